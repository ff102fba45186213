package model

import "slices"

// Role is a closed set of user roles. Roles do not inherit from each other.
type Role string

const (
	// RoleUser is a regular account.
	RoleUser Role = "user"
	// RoleAdmin is an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is an allow-list of roles.
type Roles []Role

// Contains reports whether role is in the list.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
