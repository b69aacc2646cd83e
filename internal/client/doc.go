// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the stegasaur client application runtime.
//
// It either hands the terminal to the interactive UI or runs a single
// encode or decode without it, printing a summary table of what was
// saved.
package client
