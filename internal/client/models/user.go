// Package models defines client-side data structures mirroring the backend
// wire format of the sajubook booking service.
package models

import "encoding/json"

// Role is the closed set of authorization levels a user can hold. The wire
// format transmits it as a free string; it is decoded into this enumeration
// at the session boundary.
type Role string

const (
	RoleUser      Role = "USER"
	RoleCounselor Role = "COUNSELOR"
	RoleAdmin     Role = "ADMIN"
)

// IsValid checks if the role is one of the predefined valid roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleCounselor, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a wire string into a Role. Unknown or empty values
// normalize to RoleUser so an unexpected string can never widen access.
func ParseRole(s string) Role {
	r := Role(s)
	if !r.IsValid() {
		return RoleUser
	}
	return r
}

// UnmarshalJSON decodes the wire string and normalizes unknown values,
// so every decoded User already carries a valid Role.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRole(s)
	return nil
}

// User is the profile snapshot stored alongside the access token.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsCounselor reports whether the user holds the COUNSELOR role.
func (u *User) IsCounselor() bool {
	return u != nil && u.Role == RoleCounselor
}
