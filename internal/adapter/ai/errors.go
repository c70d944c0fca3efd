package ai

import "errors"

var (
	// ErrNotConfigured is returned when no API key is configured.
	ErrNotConfigured = errors.New("ai: client not configured")

	// ErrCallFailed is returned when the provider call itself fails.
	ErrCallFailed = errors.New("ai: call failed")

	// ErrInvalidResponse is returned when the provider answers but the
	// response cannot be decoded into the requested shape.
	ErrInvalidResponse = errors.New("ai: invalid response")
)
