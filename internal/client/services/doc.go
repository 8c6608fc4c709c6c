// Package services contains application services for the SajuBook client.
//
// # Overview
//
// The authentication service sits between the backend API client and the
// local session store. It owns the session lifecycle: login persists the
// tokens and profile atomically, logout clears them unconditionally, and the
// identity queries (CurrentUser, IsLoggedIn, role checks) read only local
// state without touching the network.
//
// # Error Handling
//
// API failures propagate unchanged so callers can match them against the
// sentinels in internal/common. A failed login leaves the stored session
// exactly as it was. A failed logout request is logged and ignored; the
// local session is cleared regardless.
package services
