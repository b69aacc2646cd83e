// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/app"
	"github.com/MKhiriev/stegasaur/internal/service"
)

// humanizeServiceError shortens maintenance call errors for the status
// line. Transfer failures never pass through here; their message is shown
// as is.
func humanizeServiceError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServiceUnreachable) || errors.Is(err, service.ErrServiceDown) {
		return app.MsgServiceUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServiceUnavailable
	}

	return err.Error()
}
