// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/stegasaur/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TransferService runs encode and decode transfers and turns their results
// into locally addressable artifacts.
type TransferService interface {
	// Submit sends req to the steganography service and resolves the
	// response into an artifact registered in the blob store. Failures are
	// returned as *models.TransferFailure so their message can be shown
	// verbatim. The caller owns the returned ObjectURL.
	Submit(ctx context.Context, req models.TransferRequest) (models.ResolvedArtifact, error)

	// Health reports the state of the steganography service.
	Health(ctx context.Context) (models.ServiceHealth, error)

	// Cleanup asks the service to drop its temporary files.
	Cleanup(ctx context.Context) error
}

// DownloadService persists artifacts on explicit user request and releases
// their object URLs.
type DownloadService interface {
	// Save writes the payload behind artifact.ObjectURL into the download
	// directory under artifact.FileName and returns the written path.
	// Existing files are never overwritten. The object URL stays valid.
	Save(ctx context.Context, artifact models.ResolvedArtifact) (string, error)

	// Revoke releases an object URL. It reports whether the URL was live.
	Revoke(objectURL string) bool
}
