// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Test Fakes

type fakeAccountRepository struct {
	accounts map[string]*Account // keyed by ID
	roles    map[string]sec.Role // keyed by ID
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{
		accounts: make(map[string]*Account),
		roles:    make(map[string]sec.Role),
	}
}

func (repo *fakeAccountRepository) Create(_ context.Context, account *Account, role sec.Role) error {
	for _, existing := range repo.accounts {
		if existing.Email == account.Email {
			return apperr.Conflict("Email is already registered")
		}
	}
	copied := *account
	repo.accounts[account.ID] = &copied
	repo.roles[account.ID] = role
	return nil
}

func (repo *fakeAccountRepository) FindByID(_ context.Context, id string) (*Account, error) {
	account, ok := repo.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	copied := *account
	return &copied, nil
}

func (repo *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	for _, account := range repo.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (repo *fakeAccountRepository) FindRole(_ context.Context, id string) (sec.Role, error) {
	role, ok := repo.roles[id]
	if !ok {
		return "", apperr.NotFound("Profile")
	}
	return role, nil
}

func (repo *fakeAccountRepository) Delete(_ context.Context, id string) error {
	delete(repo.accounts, id)
	delete(repo.roles, id)
	return nil
}

type fakeSessionRepository struct {
	sessions map[string]string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]string)}
}

func (repo *fakeSessionRepository) Set(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	repo.sessions[tokenHash] = userID
	return nil
}

func (repo *fakeSessionRepository) Get(_ context.Context, tokenHash string) (string, error) {
	userID, ok := repo.sessions[tokenHash]
	if !ok {
		return "", apperr.NotFound("Session is invalid or expired")
	}
	return userID, nil
}

func (repo *fakeSessionRepository) Delete(_ context.Context, tokenHash string) error {
	delete(repo.sessions, tokenHash)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _ string, role sec.Role, _ time.Duration) (string, error) {
	return "jwt:" + userID + ":" + string(role), nil
}

func newTestService() (*Service, *fakeAccountRepository, *fakeSessionRepository) {
	accounts := newFakeAccountRepository()
	sessions := newFakeSessionRepository()
	return NewService(accounts, sessions, fakeTokenProvider{}), accounts, sessions
}

// # Registration Tests

func TestService_Register_CreatesViewerAccount(t *testing.T) {
	service, accounts, _ := newTestService()

	account, err := service.Register(context.Background(), RegisterInput{
		Email:       "  Member@ASUClub.org ",
		Password:    "correct horse battery",
		DisplayName: "New Member",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "member@asuclub.org", account.Email)
	assert.Equal(t, sec.RoleViewer, accounts.roles[account.ID])
	assert.NotEqual(t, "correct horse battery", account.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse battery", account.PasswordHash))
}

func TestService_Register_DuplicateEmailConflicts(t *testing.T) {
	service, _, _ := newTestService()

	input := RegisterInput{Email: "member@asuclub.org", Password: "password-one", DisplayName: "First"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

// # Authentication Tests

func TestService_Login_IssuesTokensWithCurrentRole(t *testing.T) {
	service, accounts, sessions := newTestService()

	account, err := service.Register(context.Background(), RegisterInput{
		Email: "member@asuclub.org", Password: "password-one", DisplayName: "Member",
	})
	require.NoError(t, err)

	// A later promotion shows up in the next login's claims.
	accounts.roles[account.ID] = sec.RoleEditor

	session, err := service.Login(context.Background(), LoginInput{
		Email: "member@asuclub.org", Password: "password-one",
	})
	require.NoError(t, err)

	assert.Equal(t, "jwt:"+account.ID+":editor", session.AccessToken)
	assert.Equal(t, sec.RoleEditor, session.Role)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Contains(t, sessions.sessions, sec.HashToken(session.RefreshToken))
}

func TestService_Login_WrongPasswordIsGeneric(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "member@asuclub.org", Password: "password-one", DisplayName: "Member",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), LoginInput{
		Email: "member@asuclub.org", Password: "wrong",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
	assert.Equal(t, "Invalid login credentials", ae.Message)
}

func TestService_Login_RemovedProfileDenied(t *testing.T) {
	service, accounts, _ := newTestService()

	account, err := service.Register(context.Background(), RegisterInput{
		Email: "member@asuclub.org", Password: "password-one", DisplayName: "Member",
	})
	require.NoError(t, err)

	// Simulate an officer removal that left the login identity behind.
	delete(accounts.roles, account.ID)

	_, err = service.Login(context.Background(), LoginInput{
		Email: "member@asuclub.org", Password: "password-one",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

// # Session Rotation Tests

func TestService_RefreshSession_RotatesToken(t *testing.T) {
	service, _, sessions := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "member@asuclub.org", Password: "password-one", DisplayName: "Member",
	})
	require.NoError(t, err)

	login, err := service.Login(context.Background(), LoginInput{
		Email: "member@asuclub.org", Password: "password-one",
	})
	require.NoError(t, err)

	refreshed, err := service.RefreshSession(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.NotContains(t, sessions.sessions, sec.HashToken(login.RefreshToken))

	// The consumed token cannot be replayed.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

func TestService_Logout_IsIdempotent(t *testing.T) {
	service, _, _ := newTestService()

	require.NoError(t, service.Logout(context.Background(), "never-issued"))
}

// # Directory Port Tests

func TestService_DirectoryPort(t *testing.T) {
	service, accounts, _ := newTestService()

	account, err := service.Register(context.Background(), RegisterInput{
		Email: "member@asuclub.org", Password: "password-one", DisplayName: "Member",
	})
	require.NoError(t, err)

	id, err := service.FindIDByEmail(context.Background(), "MEMBER@asuclub.org")
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)

	require.NoError(t, service.DeleteIdentity(context.Background(), account.ID))
	assert.NotContains(t, accounts.accounts, account.ID)

	_, err = service.FindIDByEmail(context.Background(), "member@asuclub.org")
	assert.True(t, apperr.IsNotFound(err))
}
