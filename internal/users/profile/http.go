// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	requestutil "github.com/asuclub/asu-api/internal/platform/request"
	"github.com/asuclub/asu-api/internal/platform/respond"
	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/internal/platform/validate"
)

// Handler implements the HTTP layer for role management and officer
// lifecycle operations.
type Handler struct {
	profileService *Service
}

// NewHandler constructs a new profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{profileService: service}
}

// Routes returns a [chi.Router] configured with the profile domain's
// endpoints. All routes are mounted behind RequireAuth; the finer-grained
// rules (who may change whose role) are enforced by the policy engine
// against the actor's stored profile, not their token claims.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Role Management
	router.Get("/roles", handler.listRoles)
	router.Post("/roles", handler.updateRole)
	router.Delete("/roles/{id}", handler.removeProfile)

	// Officer Lifecycle
	router.Post("/system", handler.systemAction)

	return router
}

// # Role Management Endpoints

/*
GET /api/v1/admin/roles.

Description: Lists every profile with its email and role, oldest first.
Restricted to the admin and the owner.

Response:
  - 200: []Profile: All profiles
  - 401: ErrUnauthorized: Authentication required
  - 403: ErrForbidden: Actor is not admin or owner
*/
func (handler *Handler) listRoles(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profiles, err := handler.profileService.List(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profiles)
}

// updateRoleRequest defines the expected JSON payload for role changes.
type updateRoleRequest struct {
	TargetUserID string `json:"target_user_id"`
	Role         string `json:"role"`
}

/*
POST /api/v1/admin/roles.

Description: Assigns a new role to the target profile, subject to the
role transition policy.

Request:
  - body: updateRoleRequest

Response:
  - 200: Profile: The updated profile
  - 400: ErrInvalidJSON/Validation: Missing target or unknown role
  - 403: ErrForbidden: The policy denied the transition (reason in message)
  - 404: ErrNotFound: Target profile not found
  - 409: ErrConflict: Concurrent write took the admin seat first
*/
func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("target_user_id", input.TargetUserID).
		UUID("target_user_id", input.TargetUserID).
		Required("role", input.Role)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The role vocabulary is closed at the boundary. Anything outside the
	// four known roles is a 400, never a policy decision.
	role, ok := sec.ParseRole(input.Role)
	if !ok {
		respond.Error(writer, request, apperr.BadRequest("Unknown role: "+input.Role))
		return
	}

	updated, err := handler.profileService.UpdateRole(request.Context(), actorID, input.TargetUserID, role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/admin/roles/{id}.

Description: Removes the target profile and, best-effort, its login
identity. Self-removal and owner removal are always refused.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Profile removed
  - 400: ErrBadRequest: Attempted self-removal
  - 403: ErrForbidden: The removal policy denied the request
  - 404: ErrNotFound: Target profile not found
*/
func (handler *Handler) removeProfile(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	targetID := chi.URLParam(request, "id")

	v := &validate.Validator{}
	v.Required("id", targetID).UUID("id", targetID)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.profileService.Remove(request.Context(), actorID, targetID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Officer Lifecycle Endpoints

// systemActionRequest defines the expected JSON payload for lifecycle
// operations. The target fields only apply to the admin transfer.
type systemActionRequest struct {
	Action       string `json:"action"`
	TargetUserID string `json:"target_user_id"`
	TargetEmail  string `json:"target_email"`
}

// resetResponse reports how many profiles a term reset removed.
type resetResponse struct {
	DeletedCount int `json:"deleted_count"`
}

/*
POST /api/v1/admin/system.

Description: Executes a privileged lifecycle operation. "transfer_admin"
hands the admin seat to the target and removes the outgoing admin and
editors; "reset_officers" deletes every profile except the owner's.

Request:
  - body: systemActionRequest

Response:
  - 200: TransferResult or resetResponse, depending on the action
  - 400: ErrInvalidJSON/Validation: Unknown action or missing target
  - 403: ErrForbidden: Actor lacks the required role
  - 404: ErrNotFound: Transfer target not found
*/
func (handler *Handler) systemAction(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input systemActionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.OneOf("action", input.Action, "transfer_admin", "reset_officers")
	if input.TargetUserID != "" {
		v.UUID("target_user_id", input.TargetUserID)
	}
	if input.TargetEmail != "" {
		v.Email("target_email", input.TargetEmail)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	switch input.Action {
	case "transfer_admin":
		result, err := handler.profileService.TransferAdmin(request.Context(), actorID, input.TargetUserID, input.TargetEmail)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, result)

	case "reset_officers":
		deleted, err := handler.profileService.ResetTerm(request.Context(), actorID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, resetResponse{DeletedCount: deleted})
	}
}
