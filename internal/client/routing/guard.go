package routing

import "github.com/minsu-cho/sajubook/internal/client/models"

// Snapshot is the session state the Guard evaluates against. It is taken
// once by the caller; the Guard itself never reads storage.
type Snapshot struct {
	LoggedIn bool
	Role     models.Role
}

// Verdict is the outcome of a guard check: either proceed, or go to
// Redirect instead.
type Verdict struct {
	allowed  bool
	redirect string
}

// Allow is the verdict that lets navigation proceed.
func Allow() Verdict {
	return Verdict{allowed: true}
}

// RedirectTo is the verdict that sends the user to path instead.
func RedirectTo(path string) Verdict {
	return Verdict{redirect: path}
}

// Allowed reports whether navigation may proceed.
func (v Verdict) Allowed() bool {
	return v.allowed
}

// RedirectPath returns the substitute destination for a denied navigation,
// or "" when the navigation was allowed.
func (v Verdict) RedirectPath() string {
	return v.redirect
}

// Guard evaluates route access. LoginPath receives anonymous visitors to
// protected routes; HomePath receives logged-in users lacking the required
// role.
type Guard struct {
	LoginPath string
	HomePath  string
}

// NewGuard returns a Guard with the default redirect targets.
func NewGuard() *Guard {
	return &Guard{LoginPath: "/login", HomePath: "/"}
}

// Evaluate decides whether the session described by snap may enter route.
//
// The authentication check always precedes the role checks, so an anonymous
// visitor is redirected to LoginPath even on a role-restricted route. A
// logged-in user who fails a role check is redirected to HomePath.
func (g *Guard) Evaluate(route Route, snap Snapshot) Verdict {
	req := route.Requirement()
	if req == Public {
		return Allow()
	}

	if !snap.LoggedIn {
		return RedirectTo(g.LoginPath)
	}

	switch req {
	case AdminOnly:
		if snap.Role != models.RoleAdmin {
			return RedirectTo(g.HomePath)
		}
	case CounselorOnly:
		if snap.Role != models.RoleCounselor {
			return RedirectTo(g.HomePath)
		}
	}

	return Allow()
}
