// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package sec

import "strings"

// # Officer Roles

// Role represents the access level granted to an admin dashboard account.
//
// Roles form a strict ladder: viewer < editor < admin < owner. The admin seat
// maps to the club presidency and is held by at most one account at a time;
// the owner seat is the permanent founder account and is assigned out-of-band,
// never through the API.
type Role string

const (
	// Permanent super-user; exactly one exists for the lifetime of the club
	RoleOwner Role = "owner"

	// The sole presidency seat; full dashboard access
	RoleAdmin Role = "admin"

	// Can edit site content (officers, events, gallery, carousel, history)
	RoleEditor Role = "editor"

	// Default role for a freshly registered account; read-only dashboard
	RoleViewer Role = "viewer"
)

// ParseRole validates a wire-level role string against the closed enum.
//
// Any value outside the four enumerated roles is rejected here, at the
// boundary, so downstream code never re-checks role validity.
func ParseRole(s string) (Role, bool) {
	normalized := Role(strings.ToLower(strings.TrimSpace(s)))
	switch normalized {
	case RoleOwner, RoleAdmin, RoleEditor, RoleViewer:
		return normalized, true
	}
	return "", false
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleOwner:
		return 40
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
