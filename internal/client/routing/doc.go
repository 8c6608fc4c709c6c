// Package routing decides whether the current session may enter a view.
//
// # Overview
//
// A Route declares its access requirement (public, authenticated, admin-only,
// counselor-only). The Guard evaluates a Route against a Snapshot of the
// session and returns a Verdict: either allow, or redirect to a safe path.
// The Guard never performs I/O; callers take the Snapshot first and then
// evaluate as many routes as they like against it.
//
// # Decision Order
//
// Public routes are always allowed, even for logged-in users. For protected
// routes the authentication check runs before any role check, so an anonymous
// visitor is sent to the login page rather than the home page regardless of
// which role the route demands.
package routing
