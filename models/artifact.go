// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResolvedArtifact is the local handle to the body of a successful
// transfer. ObjectURL points into the in-process blob registry and must be
// revoked by whoever owns the screen that displays the artifact.
type ResolvedArtifact struct {
	// ObjectURL is the revocable reference to the payload
	// ("blob:stegasaur/<uuid>").
	ObjectURL string

	// FileName is the name the artifact is saved under.
	FileName string

	// AuxiliaryName echoes the carrier name on decode; empty on encode.
	AuxiliaryName string

	// ContentType is the media type reported by the service, if any.
	ContentType string

	// Size is the payload length in bytes.
	Size int64
}

// State returns the navigation snapshot of the artifact.
func (a ResolvedArtifact) State() WorkflowState {
	return WorkflowState{
		ObjectURL:     a.ObjectURL,
		FileName:      a.FileName,
		AuxiliaryName: a.AuxiliaryName,
		Size:          a.Size,
	}
}

// WorkflowState is what an action screen hands to its result screen.
// It lives for exactly one navigation and is never persisted.
type WorkflowState struct {
	ObjectURL     string
	FileName      string
	AuxiliaryName string
	Size          int64
}

// Valid reports whether the state can back a result screen.
func (s *WorkflowState) Valid() bool {
	return s != nil && s.ObjectURL != ""
}

// Artifact converts the snapshot back into an artifact for saving.
func (s WorkflowState) Artifact() ResolvedArtifact {
	return ResolvedArtifact{
		ObjectURL:     s.ObjectURL,
		FileName:      s.FileName,
		AuxiliaryName: s.AuxiliaryName,
		Size:          s.Size,
	}
}
