package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *StructuredConfig
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "address and timeout",
			args: []string{"-a", "http://localhost:8000", "-request-timeout", "45s"},
			want: &StructuredConfig{
				Adapter: Adapter{HTTPAddress: "http://localhost:8000", RequestTimeout: 45 * time.Second},
			},
		},
		{
			name: "headless encode",
			args: []string{"-mode", "encode", "-carrier", "cover.png", "-secret", "note.txt", "-o", "/tmp/out"},
			want: &StructuredConfig{
				Storage: Storage{DownloadDir: "/tmp/out"},
				Run:     Run{Mode: "encode", Carrier: "cover.png", Secret: "note.txt"},
			},
		},
		{
			name: "headless decode",
			args: []string{"-mode=decode", "-encoded=stego.png"},
			want: &StructuredConfig{
				Run: Run{Mode: "decode", Encoded: "stego.png"},
			},
		},
		{
			name: "log settings",
			args: []string{"-log-file", "client.log", "-log-level", "warn"},
			want: &StructuredConfig{
				Log: Log{FilePath: "client.log", Level: "warn"},
			},
		},
		{
			name: "short config flag",
			args: []string{"-c", "cfg.json"},
			want: &StructuredConfig{JSONFilePath: "cfg.json"},
		},
		{
			name: "long config flag",
			args: []string{"-config", "cfg.json"},
			want: &StructuredConfig{JSONFilePath: "cfg.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad duration", args: []string{"-request-timeout", "later"}},
		{name: "missing value", args: []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags([]string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// Flags are parsed on a private FlagSet, so repeated calls do not panic.
func TestParseFlags_Repeatable(t *testing.T) {
	for range 3 {
		cfg, err := parseFlags([]string{"-a", "localhost:1"})
		require.NoError(t, err)
		assert.Equal(t, "localhost:1", cfg.Adapter.HTTPAddress)
	}
}
