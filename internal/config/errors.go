package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid service settings
	// (for example, missing address or negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing download directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRunConfigs indicates an unknown run mode or a headless mode
	// without its input files.
	ErrInvalidRunConfigs = errors.New("invalid run configuration")
)
