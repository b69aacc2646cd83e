// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if strings.TrimSpace(cfg.Storage.DownloadDir) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Run.Mode {
	case RunModeTUI:
	case RunModeEncode:
		if cfg.Run.Carrier == "" || cfg.Run.Secret == "" {
			return fmt.Errorf("%w: encode needs -carrier and -secret", ErrInvalidRunConfigs)
		}
	case RunModeDecode:
		if cfg.Run.Encoded == "" {
			return fmt.Errorf("%w: decode needs -encoded", ErrInvalidRunConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidRunConfigs, cfg.Run.Mode)
	}

	return nil
}
