// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workflow holds the per-screen state machine of an encode or decode
// action.
//
//	Idle ──select──▶ FilesValid ──Begin──▶ Submitting ──Finish(nil)──▶ Succeeded
//	                     ▲                      │
//	                     └────Finish(err)───────┘
//
// At most one transfer is in flight per action. Every Begin issues a new
// ticket; Finish with a ticket that is no longer current is ignored, which is
// how results of an abandoned screen are dropped.
package workflow
