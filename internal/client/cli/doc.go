// Package cli provides the interactive SajuBook command-line client.
//
// It wires configuration, the local session database, the backend API client,
// and an interactive REPL. Views are addressed by path, the same paths the
// web frontend uses, and every "go <path>" navigation is checked by the
// route guard before the view renders: anonymous visitors land on the login
// view, users lacking the required role land on the home view.
//
// Key commands:
//   - login / signup / logout
//   - go <path> — open a view (e.g. go /reservations, go /admin/users)
//   - routes    — list the views reachable with the current session
//   - whoami    — show the stored profile and token expiry
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
