// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role is the access level carried by a user account and its access tokens.
type Role string

const (
	// RoleStudent is the default role assigned on registration.
	RoleStudent Role = "student"
	// RoleInstructor is assigned to users linked to an Instructor record.
	RoleInstructor Role = "instructor"
	// RoleAdmin manages the catalog and instructors.
	RoleAdmin Role = "admin"
)

// knownRoles lists the roles in ascending order of privilege.
var knownRoles = []Role{RoleStudent, RoleInstructor, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles is the role set of an actor.
type Roles []Role

// Contains reports whether role is in the set.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ContainsAny reports whether at least one of roles is in the set.
func (rs Roles) ContainsAny(roles ...Role) bool {
	return slices.ContainsFunc(roles, rs.Contains)
}

// ToStrings renders the set as JWT claim values.
func (rs Roles) ToStrings() []string {
	result := make([]string, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.String())
	}

	return result
}

// RolesFromStrings parses JWT claim values. Unknown and repeated roles are dropped.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
