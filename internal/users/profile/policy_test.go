// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/internal/users/profile"
)

var everyRole = []sec.Role{sec.RoleViewer, sec.RoleEditor, sec.RoleAdmin, sec.RoleOwner}

/*
TestPolicy_OwnerTargetIsImmune verifies that no actor can move an owner target
to any role.
*/
func TestPolicy_OwnerTargetIsImmune(t *testing.T) {
	for _, actor := range everyRole {
		for _, requested := range everyRole {
			decision := profile.CanTransition(actor, sec.RoleOwner, requested, "", "t1")
			assert.False(t, decision.Allowed, "actor=%s requested=%s", actor, requested)
			assert.Contains(t, decision.Reason, "owner")
		}
	}
}

/*
TestPolicy_NonPrivilegedActorsAreDenied verifies rule 2: viewers and editors
cannot call the role engine at all.
*/
func TestPolicy_NonPrivilegedActorsAreDenied(t *testing.T) {
	for _, actor := range []sec.Role{sec.RoleViewer, sec.RoleEditor} {
		decision := profile.CanTransition(actor, sec.RoleViewer, sec.RoleEditor, "", "t1")
		assert.False(t, decision.Allowed, "actor=%s", actor)
	}
}

/*
TestPolicy_AdminLattice covers the admin's two permitted swaps and the denial
of everything else.
*/
func TestPolicy_AdminLattice(t *testing.T) {
	tests := []struct {
		name          string
		targetCurrent sec.Role
		requested     sec.Role
		allowed       bool
	}{
		{"promote_viewer_to_editor", sec.RoleViewer, sec.RoleEditor, true},
		{"demote_editor_to_viewer", sec.RoleEditor, sec.RoleViewer, true},
		{"viewer_to_admin_denied", sec.RoleViewer, sec.RoleAdmin, false},
		{"editor_to_admin_denied", sec.RoleEditor, sec.RoleAdmin, false},
		{"viewer_to_owner_denied", sec.RoleViewer, sec.RoleOwner, false},
		{"noop_viewer_denied", sec.RoleViewer, sec.RoleViewer, false},
		{"demote_admin_denied", sec.RoleAdmin, sec.RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := profile.CanTransition(sec.RoleAdmin, tt.targetCurrent, tt.requested, "", "t1")
			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}

/*
TestPolicy_OwnerAssignments covers rule 4: owner can hand out any role except
owner, and admin only while the seat is vacant.
*/
func TestPolicy_OwnerAssignments(t *testing.T) {
	t.Run("owner_role_never_assignable", func(t *testing.T) {
		for _, current := range []sec.Role{sec.RoleViewer, sec.RoleEditor, sec.RoleAdmin} {
			decision := profile.CanTransition(sec.RoleOwner, current, sec.RoleOwner, "", "t1")
			assert.False(t, decision.Allowed, "current=%s", current)
		}
	})

	t.Run("admin_assignable_when_seat_vacant", func(t *testing.T) {
		decision := profile.CanTransition(sec.RoleOwner, sec.RoleViewer, sec.RoleAdmin, "", "t1")
		assert.True(t, decision.Allowed)
	})

	t.Run("admin_blocked_by_existing_admin", func(t *testing.T) {
		decision := profile.CanTransition(sec.RoleOwner, sec.RoleViewer, sec.RoleAdmin, "A", "B")
		assert.False(t, decision.Allowed)

		// The denial names the blocking admin so the owner knows whom to demote.
		assert.Contains(t, decision.Reason, "A")
		assert.Contains(t, decision.Reason, "Demote them first")
	})

	t.Run("admin_noop_when_target_already_holds_seat", func(t *testing.T) {
		decision := profile.CanTransition(sec.RoleOwner, sec.RoleAdmin, sec.RoleAdmin, "B", "B")
		assert.True(t, decision.Allowed)
	})

	t.Run("demote_and_promote_freely", func(t *testing.T) {
		assert.True(t, profile.CanTransition(sec.RoleOwner, sec.RoleAdmin, sec.RoleViewer, "A", "A").Allowed)
		assert.True(t, profile.CanTransition(sec.RoleOwner, sec.RoleViewer, sec.RoleEditor, "A", "B").Allowed)
	})
}

/*
TestPolicy_CanRemove_SelfRemovalDenied verifies that self-removal is denied
for every role, including owner.
*/
func TestPolicy_CanRemove_SelfRemovalDenied(t *testing.T) {
	for _, role := range everyRole {
		decision := profile.CanRemove(role, role, "same", "same")
		assert.False(t, decision.Allowed, "role=%s", role)
	}
}

/*
TestPolicy_CanRemove_OwnerTargetDenied verifies the owner account can never be
removed, whoever is asking.
*/
func TestPolicy_CanRemove_OwnerTargetDenied(t *testing.T) {
	for _, actor := range everyRole {
		decision := profile.CanRemove(actor, sec.RoleOwner, "a1", "t1")
		assert.False(t, decision.Allowed, "actor=%s", actor)
	}
}

/*
TestPolicy_CanRemove_Matrix covers the actor/target removal lattice.
*/
func TestPolicy_CanRemove_Matrix(t *testing.T) {
	tests := []struct {
		name    string
		actor   sec.Role
		target  sec.Role
		allowed bool
	}{
		{"admin_removes_viewer", sec.RoleAdmin, sec.RoleViewer, true},
		{"admin_removes_editor", sec.RoleAdmin, sec.RoleEditor, true},
		{"admin_removes_admin_denied", sec.RoleAdmin, sec.RoleAdmin, false},
		{"owner_removes_viewer", sec.RoleOwner, sec.RoleViewer, true},
		{"owner_removes_editor", sec.RoleOwner, sec.RoleEditor, true},
		{"owner_removes_admin", sec.RoleOwner, sec.RoleAdmin, true},
		{"editor_cannot_remove", sec.RoleEditor, sec.RoleViewer, false},
		{"viewer_cannot_remove", sec.RoleViewer, sec.RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := profile.CanRemove(tt.actor, tt.target, "a1", "t1")
			assert.Equal(t, tt.allowed, decision.Allowed)
		})
	}
}
