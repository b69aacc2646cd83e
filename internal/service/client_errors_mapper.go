// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/stegasaur/internal/adapter"
)

// mapAdapterError translates maintenance call errors of the adapter into
// service errors. Transfer failures are passed through untouched.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrServiceDown, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
	}
}
