// Package session holds the current device's authenticated-identity record:
// the access token, the optional refresh token, and a snapshot of the user
// profile.
//
// # Contract
//
// The Store keeps three independent string-keyed slots (access_token,
// refresh_token, user). All three are written together on login and removed
// together on logout, inside one transaction. Readers treat any partial or
// unparsable state as "no session": a missing token, a missing profile, or
// a profile that fails to decode all report the caller as logged out and
// never surface an error for that condition.
//
// The Store is owned by the auth service; other components only read it.
//
// See Also
//
//   - Interface: Store
//   - SQLite impl: SQLiteStore
//   - Record: Session
package session
