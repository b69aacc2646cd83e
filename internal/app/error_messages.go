// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// stegasaur client screens and the headless runner.
//
// All Msg* constants are human-readable message strings shown inline on a
// screen or printed by the headless runner. Keeping them in one place
// ensures consistent wording throughout the client.
package app

const (
	// MsgCarrierMustBePNG is shown when the encode carrier is not a PNG.
	MsgCarrierMustBePNG = "Carrier must be PNG"

	// MsgEncodedMustBePNG is shown when the decode input is not a PNG.
	MsgEncodedMustBePNG = "Encoded file must be PNG"

	// MsgSelectBothFiles is shown when encode is requested without a
	// carrier and a secret.
	MsgSelectBothFiles = "Please select both files"

	// MsgSelectEncodedFile is shown when decode is requested without an
	// encoded file.
	MsgSelectEncodedFile = "Please select an encoded file"

	// MsgFileNotFound prefixes the path of a selection that does not exist.
	MsgFileNotFound = "File not found"

	// MsgNotRegularFile prefixes the path of a selection that is a
	// directory or device.
	MsgNotRegularFile = "Not a regular file"

	// MsgNetworkErrorPrefix starts every transport failure message.
	MsgNetworkErrorPrefix = "Network error: "

	// MsgServiceUnavailable is shown on the home screen when the health
	// check fails.
	MsgServiceUnavailable = "Service unavailable"

	// MsgBinaryMissing is shown when the service reports that its
	// steganography binary is absent.
	MsgBinaryMissing = "Service is up but the stegasaur binary is missing"

	// MsgCleanupDone confirms a successful cleanup of service temp files.
	MsgCleanupDone = "Service temporary files removed"

	// MsgSaved prefixes the path an artifact was saved to.
	MsgSaved = "Saved to"

	// MsgCopied confirms that the saved path was copied.
	MsgCopied = "Path copied to clipboard"

	// MsgNothingSaved is shown when copy is requested before any save.
	MsgNothingSaved = "Save the file first"
)
