// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Test Fakes

// fakeRepository is an in-memory [Repository] backed by a map keyed on
// profile ID. Mutations honor the same owner guard the SQL layer carries.
type fakeRepository struct {
	profiles map[string]*Profile
}

func newFakeRepository(seed ...*Profile) *fakeRepository {
	repo := &fakeRepository{profiles: make(map[string]*Profile)}
	for _, p := range seed {
		copied := *p
		repo.profiles[p.ID] = &copied
	}
	return repo
}

func (repo *fakeRepository) FindByID(_ context.Context, id string) (*Profile, error) {
	p, ok := repo.profiles[id]
	if !ok {
		return nil, apperr.NotFound("Profile")
	}
	copied := *p
	return &copied, nil
}

func (repo *fakeRepository) FindAdminID(_ context.Context) (string, error) {
	for id, p := range repo.profiles {
		if p.Role == sec.RoleAdmin {
			return id, nil
		}
	}
	return "", nil
}

func (repo *fakeRepository) List(_ context.Context) ([]Profile, error) {
	out := make([]Profile, 0, len(repo.profiles))
	for _, p := range repo.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (repo *fakeRepository) ListByRoles(_ context.Context, roles []sec.Role, excludeID string) ([]Profile, error) {
	out := make([]Profile, 0)
	for id, p := range repo.profiles {
		if id == excludeID {
			continue
		}
		for _, role := range roles {
			if p.Role == role {
				out = append(out, *p)
				break
			}
		}
	}
	return out, nil
}

func (repo *fakeRepository) UpdateRole(_ context.Context, id string, role sec.Role) error {
	p, ok := repo.profiles[id]
	if !ok || p.Role == sec.RoleOwner {
		return apperr.NotFound("Target profile")
	}
	p.Role = role
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id string) error {
	p, ok := repo.profiles[id]
	if !ok || p.Role == sec.RoleOwner {
		return apperr.NotFound("Target profile")
	}
	delete(repo.profiles, id)
	return nil
}

func (repo *fakeRepository) TransferAdmin(_ context.Context, targetID string, removeIDs []string) error {
	target, ok := repo.profiles[targetID]
	if !ok || target.Role == sec.RoleOwner {
		return apperr.NotFound("Target profile")
	}
	for _, id := range removeIDs {
		if p, ok := repo.profiles[id]; ok && p.Role != sec.RoleOwner {
			delete(repo.profiles, id)
		}
	}
	target.Role = sec.RoleAdmin
	return nil
}

func (repo *fakeRepository) DeleteAllExceptOwner(_ context.Context) ([]string, error) {
	deleted := make([]string, 0)
	for id, p := range repo.profiles {
		if p.Role == sec.RoleOwner {
			continue
		}
		delete(repo.profiles, id)
		deleted = append(deleted, id)
	}
	return deleted, nil
}

// fakeDirectory records identity deletions and can be told to fail them.
type fakeDirectory struct {
	emails     map[string]string // email -> id
	deleted    []string
	deleteErr  error
	lookupFail bool
}

func (dir *fakeDirectory) FindIDByEmail(_ context.Context, email string) (string, error) {
	if dir.lookupFail {
		return "", errors.New("directory offline")
	}
	id, ok := dir.emails[email]
	if !ok {
		return "", apperr.NotFound("Account")
	}
	return id, nil
}

func (dir *fakeDirectory) DeleteIdentity(_ context.Context, id string) error {
	if dir.deleteErr != nil {
		return dir.deleteErr
	}
	dir.deleted = append(dir.deleted, id)
	return nil
}

func newTestService(repo *fakeRepository, dir *fakeDirectory) *Service {
	if dir == nil {
		dir = &fakeDirectory{}
	}
	return NewService(repo, dir, slog.New(slog.DiscardHandler))
}

func seedProfile(id string, role sec.Role) *Profile {
	return &Profile{ID: id, Role: role}
}

// # Role Mutation Tests

/*
TestService_UpdateRole_AdminSwapsViewerAndEditor covers the one transition
pair an admin may perform in both directions.
*/
func TestService_UpdateRole_AdminSwapsViewerAndEditor(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("u1", sec.RoleViewer),
	)
	service := newTestService(repo, nil)

	updated, err := service.UpdateRole(context.Background(), "admin-1", "u1", sec.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, updated.Role)
	assert.Equal(t, sec.RoleEditor, repo.profiles["u1"].Role)

	updated, err = service.UpdateRole(context.Background(), "admin-1", "u1", sec.RoleViewer)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleViewer, updated.Role)
}

/*
TestService_UpdateRole_AdminCannotPromoteToAdmin verifies an admin is
refused when trying to hand out their own role.
*/
func TestService_UpdateRole_AdminCannotPromoteToAdmin(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("u1", sec.RoleViewer),
	)
	service := newTestService(repo, nil)

	_, err := service.UpdateRole(context.Background(), "admin-1", "u1", sec.RoleAdmin)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Equal(t, sec.RoleViewer, repo.profiles["u1"].Role)
}

/*
TestService_UpdateRole_OwnerBlockedBySeatedAdmin asserts the denial names
the profile currently holding the admin seat.
*/
func TestService_UpdateRole_OwnerBlockedBySeatedAdmin(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-a", sec.RoleAdmin),
		seedProfile("user-b", sec.RoleEditor),
	)
	service := newTestService(repo, nil)

	_, err := service.UpdateRole(context.Background(), "owner-1", "user-b", sec.RoleAdmin)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Contains(t, ae.Message, "admin-a")
	assert.Contains(t, ae.Message, "Demote them first")
}

/*
TestService_UpdateRole_OwnerFillsVacantSeat promotes into an empty admin
seat without obstruction.
*/
func TestService_UpdateRole_OwnerFillsVacantSeat(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("user-b", sec.RoleEditor),
	)
	service := newTestService(repo, nil)

	updated, err := service.UpdateRole(context.Background(), "owner-1", "user-b", sec.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, updated.Role)
}

func TestService_UpdateRole_TargetMissing(t *testing.T) {
	repo := newFakeRepository(seedProfile("owner-1", sec.RoleOwner))
	service := newTestService(repo, nil)

	_, err := service.UpdateRole(context.Background(), "owner-1", "ghost", sec.RoleEditor)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_UpdateRole_ActorWithoutProfile(t *testing.T) {
	repo := newFakeRepository(seedProfile("u1", sec.RoleViewer))
	service := newTestService(repo, nil)

	_, err := service.UpdateRole(context.Background(), "ghost", "u1", sec.RoleEditor)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
}

// # Removal Tests

func TestService_Remove_SelfRemovalRefused(t *testing.T) {
	repo := newFakeRepository(seedProfile("admin-1", sec.RoleAdmin))
	service := newTestService(repo, nil)

	err := service.Remove(context.Background(), "admin-1", "admin-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
	assert.Contains(t, repo.profiles, "admin-1")
}

func TestService_Remove_DeletesProfileAndIdentity(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("u1", sec.RoleViewer),
	)
	dir := &fakeDirectory{}
	service := newTestService(repo, dir)

	err := service.Remove(context.Background(), "admin-1", "u1")
	require.NoError(t, err)

	assert.NotContains(t, repo.profiles, "u1")
	assert.Equal(t, []string{"u1"}, dir.deleted)
}

/*
TestService_Remove_IdentityFailureIsSwallowed verifies the profile deletion
stands even when the identity record cannot be removed.
*/
func TestService_Remove_IdentityFailureIsSwallowed(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("u1", sec.RoleViewer),
	)
	dir := &fakeDirectory{deleteErr: errors.New("directory offline")}
	service := newTestService(repo, dir)

	err := service.Remove(context.Background(), "admin-1", "u1")
	require.NoError(t, err)
	assert.NotContains(t, repo.profiles, "u1")
}

func TestService_Remove_AdminCannotRemoveAdmin(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("admin-2", sec.RoleAdmin),
	)
	service := newTestService(repo, nil)

	err := service.Remove(context.Background(), "admin-1", "admin-2")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Contains(t, repo.profiles, "admin-2")
}

// # Admin Transfer Tests

/*
TestService_TransferAdmin_RemovesOutgoingAndPromotes runs the full
handover: the sitting admin and every editor disappear, the target takes
the seat, viewers and the owner are untouched.
*/
func TestService_TransferAdmin_RemovesOutgoingAndPromotes(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-old", sec.RoleAdmin),
		seedProfile("editor-1", sec.RoleEditor),
		seedProfile("viewer-1", sec.RoleViewer),
		seedProfile("target", sec.RoleViewer),
	)
	dir := &fakeDirectory{}
	service := newTestService(repo, dir)

	result, err := service.TransferAdmin(context.Background(), "owner-1", "target", "")
	require.NoError(t, err)

	assert.Equal(t, "target", result.NewAdminID)
	assert.ElementsMatch(t, []string{"admin-old", "editor-1"}, result.RemovedIDs)

	assert.Equal(t, sec.RoleAdmin, repo.profiles["target"].Role)
	assert.NotContains(t, repo.profiles, "admin-old")
	assert.NotContains(t, repo.profiles, "editor-1")
	assert.Contains(t, repo.profiles, "viewer-1")
	assert.Contains(t, repo.profiles, "owner-1")
	assert.ElementsMatch(t, []string{"admin-old", "editor-1"}, dir.deleted)
}

/*
TestService_TransferAdmin_ResolvesTargetByEmail exercises the email
fallback when no target ID is supplied.
*/
func TestService_TransferAdmin_ResolvesTargetByEmail(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("target", sec.RoleViewer),
	)
	dir := &fakeDirectory{emails: map[string]string{"new.admin@asuclub.org": "target"}}
	service := newTestService(repo, dir)

	result, err := service.TransferAdmin(context.Background(), "owner-1", "", "new.admin@asuclub.org")
	require.NoError(t, err)
	assert.Equal(t, "target", result.NewAdminID)
	assert.Equal(t, sec.RoleAdmin, repo.profiles["target"].Role)
}

func TestService_TransferAdmin_RequiresTarget(t *testing.T) {
	repo := newFakeRepository(seedProfile("owner-1", sec.RoleOwner))
	service := newTestService(repo, nil)

	_, err := service.TransferAdmin(context.Background(), "owner-1", "", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_TransferAdmin_OwnerCannotTakeSeat(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-1", sec.RoleAdmin),
	)
	service := newTestService(repo, nil)

	_, err := service.TransferAdmin(context.Background(), "admin-1", "owner-1", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
	assert.Equal(t, sec.RoleOwner, repo.profiles["owner-1"].Role)
}

func TestService_TransferAdmin_ViewerActorForbidden(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("viewer-1", sec.RoleViewer),
		seedProfile("target", sec.RoleViewer),
	)
	service := newTestService(repo, nil)

	_, err := service.TransferAdmin(context.Background(), "viewer-1", "target", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
}

/*
TestService_TransferAdmin_IsIdempotent transfers to a target that already
holds the seat: no removals, no role change, no error.
*/
func TestService_TransferAdmin_IsIdempotent(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("viewer-1", sec.RoleViewer),
	)
	dir := &fakeDirectory{}
	service := newTestService(repo, dir)

	result, err := service.TransferAdmin(context.Background(), "owner-1", "admin-1", "")
	require.NoError(t, err)

	assert.Equal(t, "admin-1", result.NewAdminID)
	assert.Empty(t, result.RemovedIDs)
	assert.Empty(t, dir.deleted)
	assert.Equal(t, sec.RoleAdmin, repo.profiles["admin-1"].Role)
	assert.Contains(t, repo.profiles, "viewer-1")
}

// # Term Reset Tests

func TestService_ResetTerm_DeletesEveryoneButOwner(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-1", sec.RoleAdmin),
		seedProfile("editor-1", sec.RoleEditor),
		seedProfile("viewer-1", sec.RoleViewer),
	)
	dir := &fakeDirectory{}
	service := newTestService(repo, dir)

	deleted, err := service.ResetTerm(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 3, deleted)
	assert.Len(t, repo.profiles, 1)
	assert.Contains(t, repo.profiles, "owner-1")
	assert.ElementsMatch(t, []string{"admin-1", "editor-1", "viewer-1"}, dir.deleted)
}

func TestService_ResetTerm_SecondRunIsIdempotent(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("viewer-1", sec.RoleViewer),
	)
	service := newTestService(repo, nil)

	deleted, err := service.ResetTerm(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = service.ResetTerm(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestService_ResetTerm_AdminForbidden(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("admin-1", sec.RoleAdmin),
	)
	service := newTestService(repo, nil)

	_, err := service.ResetTerm(context.Background(), "admin-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Contains(t, repo.profiles, "admin-1")
}

/*
TestService_ResetTerm_IdentityFailuresDoNotAbort keeps the reset successful
even when every identity deletion fails.
*/
func TestService_ResetTerm_IdentityFailuresDoNotAbort(t *testing.T) {
	repo := newFakeRepository(
		seedProfile("owner-1", sec.RoleOwner),
		seedProfile("viewer-1", sec.RoleViewer),
	)
	dir := &fakeDirectory{deleteErr: errors.New("directory offline")}
	service := newTestService(repo, dir)

	deleted, err := service.ResetTerm(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Len(t, repo.profiles, 1)
}
