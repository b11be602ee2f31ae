// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile

import (
	"fmt"

	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Role Policy Engine
//
// The functions in this file are pure: every fact they need (roles, the ID of
// the current admin) is passed in, and they never touch storage. Denial
// reasons are written for the officer reading them in the dashboard, so each
// one says what to do instead of just "no".

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	// Reason explains a denial in client-facing language. Empty when allowed.
	Reason string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanTransition decides whether actor may move a target from its current role
// to the requested role.
//
// currentAdminID is the ID of whichever profile holds the admin seat right
// now ("" if vacant); targetID identifies the target. Both are needed only
// for the single-admin rule.
//
// # Precedence
//
// Rules are evaluated in order; the first match decides:
//  1. An owner target is immune, whoever is asking.
//  2. Only admin and owner actors may change roles at all.
//  3. An admin may only swap viewers and editors.
//  4. An owner may assign viewer, editor, or admin — but never owner, and
//     admin only while the seat is vacant or already held by the target.
func CanTransition(actor, targetCurrent, requested sec.Role, currentAdminID, targetID string) Decision {

	// Rule 1: the owner account can never be modified.
	if targetCurrent == sec.RoleOwner {
		return deny("The owner account cannot be modified.")
	}

	// Rule 2: everyone below admin is shut out of role management.
	if actor != sec.RoleAdmin && actor != sec.RoleOwner {
		return deny("Only the admin or the owner can change roles.")
	}

	// Rule 3: admin lattice — viewer↔editor swaps only.
	if actor == sec.RoleAdmin {
		promoted := targetCurrent == sec.RoleViewer && requested == sec.RoleEditor
		demoted := targetCurrent == sec.RoleEditor && requested == sec.RoleViewer

		if promoted || demoted {
			return allow()
		}
		return deny("Admins can only promote viewers to editors or demote editors to viewers.")
	}

	// Rule 4: owner.
	if requested == sec.RoleOwner {
		// There is exactly one owner, assigned out-of-band.
		return deny("The owner role cannot be assigned.")
	}

	if requested == sec.RoleAdmin && targetCurrent != sec.RoleAdmin {
		// Promoting a new admin requires a vacant seat.
		if currentAdminID != "" && currentAdminID != targetID {
			return deny(fmt.Sprintf("There is already an admin (%s). Demote them first.", currentAdminID))
		}
	}

	return allow()
}

// CanRemove decides whether actor may remove the target's account entirely.
//
// Removal is harsher than demotion (the profile and identity are deleted), so
// the rules are stricter: nobody removes themselves, nobody removes the
// owner, and admins cannot remove their peers.
func CanRemove(actor, target sec.Role, actorID, targetID string) Decision {

	if targetID == actorID {
		return deny("You cannot remove your own account.")
	}

	if target == sec.RoleOwner {
		return deny("The owner account cannot be removed.")
	}

	switch actor {
	case sec.RoleOwner:
		// Any non-owner, non-self target.
		return allow()

	case sec.RoleAdmin:
		if target == sec.RoleAdmin {
			return deny("Admins cannot remove other admins.")
		}
		if target == sec.RoleViewer || target == sec.RoleEditor {
			return allow()
		}
		return deny("Admins can only remove viewers or editors.")
	}

	return deny("Only the admin or the owner can remove accounts.")
}
