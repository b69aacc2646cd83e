// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the address and timeout of the steganography service.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Storage holds where saved artifacts are written.
	Storage Storage `envPrefix:"STORAGE_"`
	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`
	// Run selects the interactive UI or a one-shot headless transfer.
	Run Run `envPrefix:"RUN_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base address of the steganography service, either
	// "host:port" or a full URL (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds a single transfer. Zero leaves the transport
	// defaults in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds file-system settings.
type Storage struct {
	// DownloadDir is the directory saved artifacts are written to.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the log file. Empty means next to the executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Run holds the run mode and, for headless modes, the input files.
type Run struct {
	// Mode is one of "tui", "encode", "decode".
	// Env: RUN_MODE
	Mode string `env:"MODE"`
	// Carrier is the PNG carrier for headless encode.
	Carrier string `env:"CARRIER"`
	// Secret is the file to hide for headless encode.
	Secret string `env:"SECRET"`
	// Encoded is the encoded PNG for headless decode.
	Encoded string `env:"ENCODED"`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress = "localhost:8000"
	DefaultDownloadDir = "."
	DefaultLogLevel    = "debug"
	DefaultRunMode     = string(RunModeTUI)
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Storage: Storage{DownloadDir: DefaultDownloadDir},
		Log:     Log{Level: DefaultLogLevel},
		Run:     Run{Mode: DefaultRunMode},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources for the given command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
