package routing

// Routes is the application route table. Paths mirror the web frontend so
// support staff can reference the same locations in either client.
var Routes = []Route{
	{Path: "/", Name: "home"},
	{Path: "/login", Name: "login"},
	{Path: "/signup", Name: "signup"},
	{Path: "/counselors", Name: "counselor-list"},
	{Path: "/counselors/detail", Name: "counselor-detail"},

	{Path: "/reservations", Name: "my-reservations", RequiresAuth: true},
	{Path: "/payments", Name: "my-payments", RequiresAuth: true},
	{Path: "/reviews", Name: "my-reviews", RequiresAuth: true},
	{Path: "/notifications", Name: "notifications", RequiresAuth: true},
	{Path: "/favorites", Name: "favorites", RequiresAuth: true},
	{Path: "/role-request", Name: "role-request", RequiresAuth: true},

	{Path: "/dashboard", Name: "counselor-dashboard", RequiresAuth: true, RequiresCounselor: true},
	{Path: "/profile", Name: "counselor-profile", RequiresAuth: true, RequiresCounselor: true},

	{Path: "/admin/users", Name: "admin-users", RequiresAuth: true, RequiresAdmin: true},
	{Path: "/admin/payments", Name: "admin-payments", RequiresAuth: true, RequiresAdmin: true},
	{Path: "/admin/reviews", Name: "admin-reviews", RequiresAuth: true, RequiresAdmin: true},
	{Path: "/admin/role-requests", Name: "admin-role-requests", RequiresAuth: true, RequiresAdmin: true},
}

// Lookup finds a route by path. The second result is false when the path is
// not in the table.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
