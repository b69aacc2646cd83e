// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation identifies one of the two transfers offered by the
// steganography service.
type Operation int

const (
	// OperationEncode hides a secret file inside a PNG carrier.
	OperationEncode Operation = iota + 1

	// OperationDecode recovers a secret file from an encoded PNG.
	OperationDecode
)

// String returns the lowercase operation name used in logs.
func (o Operation) String() string {
	switch o {
	case OperationEncode:
		return "encode"
	case OperationDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Endpoint returns the service path the operation is posted to.
func (o Operation) Endpoint() string {
	switch o {
	case OperationEncode:
		return "/api/encode"
	case OperationDecode:
		return "/api/decode"
	default:
		return ""
	}
}

// DefaultArtifactName is the file name of the artifact when the service
// response does not carry one. Encode always uses it.
func (o Operation) DefaultArtifactName() string {
	switch o {
	case OperationEncode:
		return "encoded.png"
	case OperationDecode:
		return "decoded.txt"
	default:
		return ""
	}
}

// DefaultFailureMessage is shown when a failed response has no usable
// error text.
func (o Operation) DefaultFailureMessage() string {
	switch o {
	case OperationEncode:
		return "Encoding failed"
	case OperationDecode:
		return "Decoding failed"
	default:
		return "Request failed"
	}
}

// Roles lists the file roles a request for the operation must carry, in
// multipart order.
func (o Operation) Roles() []Role {
	switch o {
	case OperationEncode:
		return []Role{RoleCarrier, RoleSecret}
	case OperationDecode:
		return []Role{RoleEncoded}
	default:
		return nil
	}
}

// FileKind restricts which files a role accepts.
type FileKind int

const (
	// KindAnyFile accepts any non-empty selection.
	KindAnyFile FileKind = iota

	// KindPNGOnly accepts only names with a ".png" extension.
	KindPNGOnly
)

// Role is the part a selected file plays in a transfer.
type Role int

const (
	// RoleCarrier is the PNG image the secret is hidden in (encode).
	RoleCarrier Role = iota + 1

	// RoleSecret is the arbitrary file to hide (encode).
	RoleSecret

	// RoleEncoded is the PNG believed to contain a hidden file (decode).
	RoleEncoded
)

// PartName returns the multipart form field name for the role.
func (r Role) PartName() string {
	switch r {
	case RoleCarrier:
		return "carrier"
	case RoleSecret:
		return "secret"
	case RoleEncoded:
		return "encoded"
	default:
		return ""
	}
}

// Kind returns the file kind the role requires.
func (r Role) Kind() FileKind {
	if r == RoleCarrier || r == RoleEncoded {
		return KindPNGOnly
	}
	return KindAnyFile
}

// String returns the role name used in logs and labels.
func (r Role) String() string {
	switch r {
	case RoleCarrier:
		return "carrier"
	case RoleSecret:
		return "secret"
	case RoleEncoded:
		return "encoded"
	default:
		return "unknown"
	}
}
