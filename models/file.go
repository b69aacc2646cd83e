// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrIncompleteRequest is returned by [TransferRequest.Validate] when a
// role required by the operation has no file.
var ErrIncompleteRequest = errors.New("transfer request is missing a file")

// SelectedFile is a local file accepted into workflow state.
// Only its path and name are trusted; the content is never inspected
// before it is sent.
type SelectedFile struct {
	// Path is the location of the file on the local file system.
	Path string

	// Name is the base name shown to the user and sent as the multipart
	// file name.
	Name string

	// Size is the file size in bytes at selection time.
	Size int64
}

// TransferRequest is the role-tagged set of files sent in one transfer.
// It is built right before submission and not modified afterwards.
type TransferRequest struct {
	Operation Operation
	Files     map[Role]SelectedFile
}

// NewTransferRequest copies files into a new request for op.
func NewTransferRequest(op Operation, files map[Role]SelectedFile) TransferRequest {
	copied := make(map[Role]SelectedFile, len(files))
	for role, f := range files {
		copied[role] = f
	}
	return TransferRequest{Operation: op, Files: copied}
}

// File returns the file stored for role.
func (r TransferRequest) File(role Role) (SelectedFile, bool) {
	f, ok := r.Files[role]
	return f, ok
}

// Validate reports [ErrIncompleteRequest] unless every role of the
// operation has a file.
func (r TransferRequest) Validate() error {
	roles := r.Operation.Roles()
	if len(roles) == 0 {
		return ErrIncompleteRequest
	}
	for _, role := range roles {
		if f, ok := r.Files[role]; !ok || f.Path == "" {
			return ErrIncompleteRequest
		}
	}
	return nil
}
