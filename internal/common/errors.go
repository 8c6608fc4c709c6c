// Package common contains shared constants and sentinel errors used across
// the sajubook client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Transport-level error: the request never reached the backend,
	// or timed out before a response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// Backend authorization rejection (HTTP 403).
	ErrAccessDenied = errors.New("access denied")
)
