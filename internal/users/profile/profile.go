// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

/*
Package profile implements the officer access-control core of the dashboard.

Every dashboard account owns exactly one Profile row mapping its identity to a
role on the ladder viewer < editor < admin < owner. This package decides who
may move whom on that ladder and executes the approved moves, including the
two compound operations that mark a change of club leadership: transferring
the presidency (admin seat) and resetting the whole officer term.

Architecture:

  - Policy: pure decision functions (CanTransition, CanRemove) with no I/O.
  - Service: loads the acting profile, consults policy, executes store writes.
  - Repository: Postgres-backed profile rows; the single-admin invariant is
    additionally backed by a partial unique index so concurrent promotions
    cannot race past the policy check.
  - Directory: the identity provider surface (email lookup, identity deletion).

Identity deletion is deliberately best-effort everywhere: once the profile row
is gone the person has lost dashboard access, which is the externally
observable effect. A lingering identity record is an accepted residual state.
*/
package profile

import (
	"context"
	"time"

	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Domain Entities

// Profile maps a dashboard identity to its role.
//
// ID is immutable and correlates 1:1 with an identity record. Role is mutated
// only by the Service in this package; CreatedAt is set at creation and never
// touched again.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Role      sec.Role  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferResult reports the outcome of an admin (presidency) transfer.
type TransferResult struct {
	NewAdminID string   `json:"admin"`
	RemovedIDs []string `json:"removed"`
}

// # Repository Contracts

// Repository defines the persistence contract for profile rows.
//
// Implementations must treat owner rows as immutable: UpdateRole, Delete,
// TransferAdmin, and DeleteAllExceptOwner must never touch a row whose role
// is owner, regardless of what the caller asks for.
type Repository interface {
	/*
		FindByID retrieves a profile by its unique ID.

		Returns:
		  - *Profile: Loaded profile
		  - error: apperr.NotFound if absent or its stored role is invalid
	*/
	FindByID(context context.Context, id string) (*Profile, error)

	/*
		FindAdminID returns the ID of the profile currently holding the admin
		seat, or "" if the seat is vacant.
	*/
	FindAdminID(context context.Context) (string, error)

	/*
		List returns all profiles joined with their identity email, ordered by
		creation time.
	*/
	List(context context.Context) ([]Profile, error)

	/*
		ListByRoles returns the profiles whose role is in the given set,
		excluding the profile with excludeID.
	*/
	ListByRoles(context context.Context, roles []sec.Role, excludeID string) ([]Profile, error)

	/*
		UpdateRole overwrites the role of a non-owner profile.

		Returns:
		  - error: apperr.NotFound if no non-owner row matched;
		    apperr.Conflict if the single-admin index rejected the write
	*/
	UpdateRole(context context.Context, id string, role sec.Role) error

	/*
		Delete removes a single non-owner profile row.
	*/
	Delete(context context.Context, id string) error

	/*
		TransferAdmin deletes the removeIDs profile rows and promotes targetID
		to admin inside one transaction, so a crash mid-transfer can never
		leave removed editors without a promoted admin.
	*/
	TransferAdmin(context context.Context, targetID string, removeIDs []string) error

	/*
		DeleteAllExceptOwner bulk-deletes every non-owner profile in a single
		statement and returns the deleted IDs.
	*/
	DeleteAllExceptOwner(context context.Context) ([]string, error)
}

// Directory is the identity-provider surface this package consumes.
//
// It is implemented by the identity service; defining it here keeps the
// access-control core independent of how identities are stored.
type Directory interface {
	/*
		FindIDByEmail resolves an identity ID from an email address
		(case-insensitive, first match).

		Returns:
		  - string: Identity ID
		  - error: apperr.NotFound when no identity matches
	*/
	FindIDByEmail(context context.Context, email string) (string, error)

	/*
		DeleteIdentity permanently removes an identity record and its
		sessions. Callers treat failures as non-fatal.
	*/
	DeleteIdentity(context context.Context, id string) error
}
