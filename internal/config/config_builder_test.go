package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// Later sources override earlier ones, zero fields never override.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "first:1"}, Storage: Storage{DownloadDir: "/a"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "second:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/a", cfg.Storage.DownloadDir)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestBuilder_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultDownloadDir, cfg.Storage.DownloadDir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultRunMode, cfg.Run.Mode)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestBuilder_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":      "env:1",
		"STORAGE_DOWNLOAD_DIR": "/env",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "flag:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/env", cfg.Storage.DownloadDir)
}

func TestBuilder_JSONOverridesFlags(t *testing.T) {
	setEnvVars(t, nil)
	path := writeJSONFile(t, `{"adapter": {"http_address": "json:3", "request_timeout": "5s"}}`)

	cfg, err := GetStructuredConfig([]string{"-a", "flag:2", "-c", path, "-o", "/flag"})
	require.NoError(t, err)

	assert.Equal(t, "json:3", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/flag", cfg.Storage.DownloadDir)
}

func TestBuilder_JSONPathFromEnv(t *testing.T) {
	path := writeJSONFile(t, `{"storage": {"download_dir": "/json"}}`)
	setEnvVars(t, map[string]string{"CONFIG": path})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "/json", cfg.Storage.DownloadDir)
}

func TestBuilder_CollectsErrors(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "bogus"})

	cfg, err := GetStructuredConfig([]string{"-unknown"})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
	assert.Contains(t, err.Error(), "error parsing flags")
}

// ── LoadClientConfig ──────────────────────────────────────────────────────────

func TestLoadClientConfig_DefaultsToTUI(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := LoadClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, RunModeTUI, cfg.Run.Mode)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultDownloadDir, cfg.Storage.DownloadDir)
}

func TestLoadClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name: "headless encode complete",
			args: []string{"-mode", "encode", "-carrier", "c.png", "-secret", "s.txt"},
		},
		{
			name: "mode is case insensitive",
			args: []string{"-mode", "DECODE", "-encoded", "e.png"},
		},
		{
			name:    "encode without secret",
			args:    []string{"-mode", "encode", "-carrier", "c.png"},
			wantErr: ErrInvalidRunConfigs,
		},
		{
			name:    "decode without encoded",
			args:    []string{"-mode", "decode"},
			wantErr: ErrInvalidRunConfigs,
		},
		{
			name:    "unknown mode",
			args:    []string{"-mode", "convert"},
			wantErr: ErrInvalidRunConfigs,
		},
		{
			name:    "negative timeout",
			args:    []string{"-request-timeout", "-1s"},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, nil)

			_, err := LoadClientConfig(tt.args)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "localhost:8000"},
			Storage: ClientStorage{DownloadDir: "."},
			Run:     ClientRun{Mode: RunModeTUI},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("blank address", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.HTTPAddress = "  "
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("blank download dir", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DownloadDir = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})
}
