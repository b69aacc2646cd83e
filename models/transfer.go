// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// TransferSuccess is the successful half of a transfer outcome: the raw
// response body and the full response header set.
type TransferSuccess struct {
	Payload []byte
	Header  http.Header
}

// FailureKind classifies a failed transfer.
type FailureKind int

const (
	// FailureStructured means the service answered with a non-2xx status.
	FailureStructured FailureKind = iota + 1

	// FailureTransport means no response was received at all.
	FailureTransport
)

// TransferFailure is the failed half of a transfer outcome. It is returned
// as an error so callers can use errors.As.
type TransferFailure struct {
	Kind FailureKind

	// StatusCode is the HTTP status for structured failures, zero otherwise.
	StatusCode int

	// Message is the text shown to the user as is.
	Message string

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements error.
func (f *TransferFailure) Error() string {
	return f.Message
}

// Unwrap returns the underlying transport error.
func (f *TransferFailure) Unwrap() error {
	return f.Err
}

// ErrorResponse is the JSON body the service sends with failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ServiceHealth is the body of GET /api/health.
type ServiceHealth struct {
	Status       string `json:"status"`
	BinaryExists bool   `json:"binary_exists"`
}

// StatusResponse is the body of maintenance endpoints such as
// POST /api/cleanup.
type StatusResponse struct {
	Status string `json:"status"`
}
