// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",

	"STORAGE_DOWNLOAD_DIR",

	"LOG_FILE",
	"LOG_LEVEL",

	"RUN_MODE",
	"RUN_CARRIER",
	"RUN_SECRET",
	"RUN_ENCODED",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "http://stego.local:8000",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DOWNLOAD_DIR": "/tmp/out",

		"LOG_FILE":  "/var/log/stegasaur.log",
		"LOG_LEVEL": "info",

		"RUN_MODE":    "encode",
		"RUN_CARRIER": "cover.png",
		"RUN_SECRET":  "secret.txt",
		"RUN_ENCODED": "stego.png",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://stego.local:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/out", cfg.Storage.DownloadDir)
	assert.Equal(t, "/var/log/stegasaur.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "encode", cfg.Run.Mode)
	assert.Equal(t, "cover.png", cfg.Run.Carrier)
	assert.Equal(t, "secret.txt", cfg.Run.Secret)
	assert.Equal(t, "stego.png", cfg.Run.Encoded)
}

func TestParseEnv_Partial(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DownloadDir)
	assert.Empty(t, cfg.Run.Mode)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every config variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		if prev, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		}
	}
}
