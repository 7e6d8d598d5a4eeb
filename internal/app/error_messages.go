// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// drive emulator handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgFileNameRequired is returned when a file-create request arrives
	// without a "name" query parameter.
	MsgFileNameRequired = "file name is required"

	// MsgCannotReadBody is returned when the raw request body of an upload
	// cannot be read.
	MsgCannotReadBody = "cannot read request body"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"
)
