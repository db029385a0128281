// Package common defines sentinel errors shared by the client and the dev
// server. Callers should use errors.Is to match these values; user-facing
// wording lives in the UI layer.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, expired or non-admin token, bad credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// Local validation errors, raised before any network call is made.
	ErrValidation = errors.New("validation error")

	// The remote reported success=false without a structured reason.
	ErrRejected = errors.New("request rejected")
)
