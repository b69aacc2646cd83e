// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the stegaSaur steganography service.
//
// The primary abstraction is [StegoAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPStegoAdapter]).
//
// Transfers report failures as *models.TransferFailure so the UI can show the
// message verbatim. Maintenance calls (health, cleanup) map HTTP statuses to
// the sentinel values in errors.go via mapHTTPError.
package adapter

import (
	"context"

	"github.com/MKhiriev/stegasaur/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/stego_adapter_mock.go -package=mock

// StegoAdapter defines transport-agnostic communication with the
// steganography service.
type StegoAdapter interface {
	// Submit sends the request's files as one multipart POST to the
	// operation's endpoint. A 2xx answer returns the raw body and headers.
	// Anything else returns a *models.TransferFailure: FailureStructured
	// when the service answered, FailureTransport when it did not.
	// A single attempt is made.
	Submit(ctx context.Context, req models.TransferRequest) (models.TransferSuccess, error)

	// Health queries GET /api/health.
	Health(ctx context.Context) (models.ServiceHealth, error)

	// Cleanup asks the service to delete its temporary files via
	// POST /api/cleanup.
	Cleanup(ctx context.Context) error
}
