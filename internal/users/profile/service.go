// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/internal/platform/validate"
)

// # Service Layer

// Service executes role mutations approved by the policy engine.
//
// Every operation re-loads the acting profile from storage rather than
// trusting JWT claims, so a demoted officer loses write access immediately
// even while their old token is still valid.
type Service struct {
	profiles  Repository
	directory Directory
	logger    *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(profiles Repository, directory Directory, logger *slog.Logger) *Service {
	return &Service{
		profiles:  profiles,
		directory: directory,
		logger:    logger,
	}
}

// # Listing

/*
List returns every profile with its identity email for the roles table.

Parameters:
  - context: context.Context
  - actorID: string (ID of the authenticated caller)

Returns:
  - []Profile: All profiles, creation order
  - error: apperr.Forbidden unless the actor is admin or owner
*/
func (service *Service) List(context context.Context, actorID string) ([]Profile, error) {
	actor, err := service.loadActor(context, actorID)
	if err != nil {
		return nil, err
	}

	if actor.Role != sec.RoleAdmin && actor.Role != sec.RoleOwner {
		return nil, apperr.Forbidden("Only the admin or the owner can view the roles table.")
	}

	return service.profiles.List(context)
}

// # Role Mutation

/*
UpdateRole moves the target profile to the requested role.

Description: Loads both profiles and the current admin seat holder, evaluates
[CanTransition], and on allow overwrites the target's role. The store layer
re-validates that the target is not the owner and enforces the single-admin
invariant with a partial unique index, closing the check-then-act race between
two concurrent promotions.

Parameters:
  - context: context.Context
  - actorID: string
  - targetID: string
  - requested: sec.Role (already validated at the HTTP boundary)

Returns:
  - *Profile: The target with its new role applied
  - error: apperr.Forbidden with the policy reason, apperr.NotFound, or storage failures
*/
func (service *Service) UpdateRole(context context.Context, actorID, targetID string, requested sec.Role) (*Profile, error) {
	actor, err := service.loadActor(context, actorID)
	if err != nil {
		return nil, err
	}

	target, err := service.profiles.FindByID(context, targetID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Target profile")
		}
		return nil, fmt.Errorf("profile_service_target_lookup_failed: %w", err)
	}

	currentAdminID, err := service.profiles.FindAdminID(context)
	if err != nil {
		return nil, fmt.Errorf("profile_service_admin_lookup_failed: %w", err)
	}

	decision := CanTransition(actor.Role, target.Role, requested, currentAdminID, targetID)
	if !decision.Allowed {
		return nil, apperr.Forbidden(decision.Reason)
	}

	if err := service.profiles.UpdateRole(context, targetID, requested); err != nil {
		return nil, err
	}

	service.logger.Info("profile_role_updated",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("from", string(target.Role)),
		slog.String("to", string(requested)),
	)

	target.Role = requested
	return target, nil
}

/*
Remove deletes the target's profile and, best-effort, its identity record.

Description: The profile deletion is the authoritative step — once the row is
gone, the target has no dashboard access. Identity deletion failure is logged
and swallowed; a lingering identity record is an accepted residual state.

Parameters:
  - context: context.Context
  - actorID: string
  - targetID: string

Returns:
  - error: apperr.BadRequest on self-removal, apperr.Forbidden per policy,
    apperr.NotFound, or storage failures
*/
func (service *Service) Remove(context context.Context, actorID, targetID string) error {

	// Self-removal is a malformed request, not a policy matter.
	if targetID == actorID {
		return apperr.BadRequest("You cannot remove your own account.")
	}

	actor, err := service.loadActor(context, actorID)
	if err != nil {
		return err
	}

	target, err := service.profiles.FindByID(context, targetID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("Target profile")
		}
		return fmt.Errorf("profile_service_target_lookup_failed: %w", err)
	}

	decision := CanRemove(actor.Role, target.Role, actorID, targetID)
	if !decision.Allowed {
		return apperr.Forbidden(decision.Reason)
	}

	if err := service.profiles.Delete(context, targetID); err != nil {
		return err
	}

	service.deleteIdentityBestEffort(context, targetID, "remove")

	service.logger.Info("profile_removed",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("target_role", string(target.Role)),
	)

	return nil
}

// # Admin Transfer Workflow

/*
TransferAdmin reassigns the sole admin (presidency) seat to the target.

Description: Resolves the target by ID or email, then removes every current
admin and editor except the target and promotes the target — the profile-row
removals and the promotion run in a single store transaction. Identity records
of the removed profiles are deleted afterwards, best-effort per ID.

Re-running a transfer with the same target is safe: with nothing left to
remove, the call simply promotes (or re-promotes) the target.

Parameters:
  - context: context.Context
  - actorID: string
  - targetID: string (may be empty if targetEmail is set)
  - targetEmail: string (fallback lookup key)

Returns:
  - *TransferResult: New admin ID plus the removed profile IDs
  - error: apperr.Forbidden, apperr.NotFound, validation or storage failures
*/
func (service *Service) TransferAdmin(context context.Context, actorID, targetID, targetEmail string) (*TransferResult, error) {
	actor, err := service.loadActor(context, actorID)
	if err != nil {
		return nil, err
	}

	if actor.Role != sec.RoleAdmin && actor.Role != sec.RoleOwner {
		return nil, apperr.Forbidden("Only the admin or the owner can transfer the admin seat.")
	}

	// Resolve the target: explicit ID wins, email is the fallback.
	targetID = strings.TrimSpace(targetID)
	targetEmail = strings.ToLower(strings.TrimSpace(targetEmail))

	if targetID == "" {
		if targetEmail == "" {
			return nil, validate.RequiredError("target", "A target user ID or email is required")
		}

		targetID, err = service.directory.FindIDByEmail(context, targetEmail)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.NotFound("Account for that email")
			}
			return nil, fmt.Errorf("profile_service_email_lookup_failed: %w", err)
		}
	}

	target, err := service.profiles.FindByID(context, targetID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Target profile")
		}
		return nil, fmt.Errorf("profile_service_target_lookup_failed: %w", err)
	}

	if target.Role == sec.RoleOwner {
		return nil, apperr.BadRequest("The owner cannot take the admin seat.")
	}

	// Everyone currently holding admin or editor, except the incoming admin,
	// is removed — a presidency transfer starts the term with a clean slate.
	outgoing, err := service.profiles.ListByRoles(context, []sec.Role{sec.RoleAdmin, sec.RoleEditor}, targetID)
	if err != nil {
		return nil, fmt.Errorf("profile_service_outgoing_lookup_failed: %w", err)
	}

	removedIDs := make([]string, 0, len(outgoing))
	for _, out := range outgoing {
		removedIDs = append(removedIDs, out.ID)
	}

	if err := service.profiles.TransferAdmin(context, targetID, removedIDs); err != nil {
		return nil, err
	}

	for _, id := range removedIDs {
		service.deleteIdentityBestEffort(context, id, "transfer_admin")
	}

	service.logger.Info("admin_seat_transferred",
		slog.String("actor_id", actorID),
		slog.String("new_admin_id", targetID),
		slog.Int("removed_count", len(removedIDs)),
	)

	return &TransferResult{NewAdminID: targetID, RemovedIDs: removedIDs}, nil
}

// # Reset Workflow

/*
ResetTerm wipes all non-owner access for a new organizational term.

Description: Deletes every profile except the owner's in one bulk statement
(its failure aborts the whole operation), then deletes the matching identity
records best-effort per ID. Running it twice is harmless — the second call
finds nothing to delete and reports zero.

Parameters:
  - context: context.Context
  - actorID: string

Returns:
  - int: Number of profiles deleted
  - error: apperr.Forbidden unless the actor is the owner, or storage failures
*/
func (service *Service) ResetTerm(context context.Context, actorID string) (int, error) {
	actor, err := service.loadActor(context, actorID)
	if err != nil {
		return 0, err
	}

	if actor.Role != sec.RoleOwner {
		return 0, apperr.Forbidden("Only the owner can reset the officer term.")
	}

	deletedIDs, err := service.profiles.DeleteAllExceptOwner(context)
	if err != nil {
		return 0, err
	}

	for _, id := range deletedIDs {
		service.deleteIdentityBestEffort(context, id, "reset_term")
	}

	service.logger.Warn("officer_term_reset",
		slog.String("actor_id", actorID),
		slog.Int("deleted_count", len(deletedIDs)),
	)

	return len(deletedIDs), nil
}

// # Helpers

// loadActor fetches the acting profile. A caller without a profile row is
// treated as forbidden, not missing — the resource they asked about is the
// target, not themselves.
func (service *Service) loadActor(context context.Context, actorID string) (*Profile, error) {
	actor, err := service.profiles.FindByID(context, actorID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Forbidden("No profile is associated with your account.")
		}
		return nil, fmt.Errorf("profile_service_actor_lookup_failed: %w", err)
	}
	return actor, nil
}

// deleteIdentityBestEffort attempts to delete an identity record and logs,
// rather than propagates, any failure.
func (service *Service) deleteIdentityBestEffort(context context.Context, id, operation string) {
	if err := service.directory.DeleteIdentity(context, id); err != nil {
		service.logger.Error("identity_delete_failed",
			slog.String("identity_id", id),
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}
