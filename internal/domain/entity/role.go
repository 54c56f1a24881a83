// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the access level carried by a credential.
type Role string

const (
	// RoleClient is the role assigned to storefront customers.
	RoleClient Role = "CLIENTE"
	// RoleUser is the legacy spelling of the customer role still issued by some backends.
	RoleUser Role = "USER"
	// RoleAdmin unlocks catalogue management, recipe validation and the analytics dashboard.
	RoleAdmin Role = "ADMIN"
)

// NormalizeRole trims and upper-cases a raw role claim.
func NormalizeRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsAdmin reports whether the role grants administrative screens.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsCustomer reports whether the role is one of the customer spellings.
func (r Role) IsCustomer() bool {
	return r == RoleClient || r == RoleUser
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role, ignoring case.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, NormalizeRole(string(role)))
}

// RolesFromStrings converts []string to normalized Roles, dropping blanks.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := NormalizeRole(s); role != "" {
			result = append(result, role)
		}
	}

	return result
}
