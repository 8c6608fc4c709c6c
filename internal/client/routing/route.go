package routing

// Requirement classifies who may enter a route.
type Requirement int

const (
	// Public routes are open to everyone, logged in or not.
	Public Requirement = iota
	// Authenticated routes require any logged-in user.
	Authenticated
	// AdminOnly routes require a logged-in user with the admin role.
	AdminOnly
	// CounselorOnly routes require a logged-in user with the counselor role.
	CounselorOnly
)

// String returns the requirement name for logs and diagnostics.
func (r Requirement) String() string {
	switch r {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case AdminOnly:
		return "admin-only"
	case CounselorOnly:
		return "counselor-only"
	default:
		return "unknown"
	}
}

// Route is a navigable view and its access metadata.
//
// RequiresAdmin and RequiresCounselor each imply RequiresAuth; the route
// table sets the flags redundantly for readability, but Requirement treats
// a role flag alone as a protected route.
type Route struct {
	Path              string
	Name              string
	RequiresAuth      bool
	RequiresAdmin     bool
	RequiresCounselor bool
}

// Requirement derives the access class from the route flags.
func (r Route) Requirement() Requirement {
	switch {
	case r.RequiresAdmin:
		return AdminOnly
	case r.RequiresCounselor:
		return CounselorOnly
	case r.RequiresAuth:
		return Authenticated
	default:
		return Public
	}
}
