// Package api contains the HTTP client for the sajubook backend.
//
// # Overview
//
// The package provides:
//  1. A Client wrapping net/http with a fixed base URL and timeout, plus
//     typed methods for every backend resource (auth, reservations,
//     payments, reviews, counselors, notifications, favorites, role
//     requests, admin).
//  2. An explicit, ordered interceptor pipeline over requests and
//     responses: BearerAuth attaches the stored access token, RequestID
//     stamps a correlation id, and ObserveFailures logs backend error
//     payloads before re-raising them unchanged.
//  3. Unverified access-token introspection (TokenExpiry) for display
//     purposes.
//
// # Error Handling
//
// Backend failures surface as *APIError, which unwraps to sentinel errors
// in internal/common (ErrorUnauthorized, ErrAccessDenied, ErrorNotFound)
// for errors.Is matching. Network-level failures and timeouts wrap
// common.ErrUnavailable. No method retries, and an authorization failure
// never clears the local session.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; independent in-flight requests
// may complete in any order.
package api
