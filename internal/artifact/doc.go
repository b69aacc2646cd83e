// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package artifact turns successful transfer responses into locally
// addressable artifacts.
//
// Payloads live in a [Store], an in-process blob registry keyed by object
// URLs of the form "blob:stegasaur/<uuid>". A URL stays readable until it is
// revoked; the screen that displays an artifact owns its URL and revokes it
// when it goes away.
//
// [Resolver] names the artifact: encode results are always "encoded.png",
// decode results take their name from the Content-Disposition header
// ([FilenameFromContentDisposition]) and fall back to "decoded.txt".
package artifact
