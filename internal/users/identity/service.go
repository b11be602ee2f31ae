// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/constants"
	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - role: The current access level, baked into the token claims.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email string, role sec.Role, timeToLive time.Duration) (string, error)
}

// Service implements account authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed before merging.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new identity [Service] with necessary dependencies.
func NewService(
	accountRepo AccountRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new dashboard account.

Description: Every registration starts at the bottom of the ladder. The
account and its viewer profile are created in one transaction; promotion
is a separate, policy-guarded operation.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - error: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.accountRepository.FindByEmail(context, normalizeEmail(input.Email))
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("identity_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	account := &Account{
		ID:           uuidv7.New(),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hashedPassword,
		DisplayName:  strings.TrimSpace(input.DisplayName),
	}

	if err := service.accountRepository.Create(context, account, sec.RoleViewer); err != nil {
		return nil, err
	}

	return account, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established dashboard session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
	Role                  sec.Role
}

/*
Login validates credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
reads the current access level from the profile row, and opens a new
refresh session in Redis.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	account, err := service.accountRepository.FindByEmail(context, normalizeEmail(input.Email))

	// If (err != nil) the account does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// The role lives on the profile row, read per-login. An officer whose
	// profile was removed still has a password but no dashboard access.
	role, err := service.accountRepository.FindRole(context, account.ID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("This account no longer has dashboard access")
		}
		return nil, fmt.Errorf("identity_service_role_lookup_failed: %w", err)
	}

	return service.openSession(context, account, role)
}

/*
Logout invalidates the refresh session behind the given token.

Description: Idempotent; an already-expired or unknown token is a successful
logout.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	tokenHash := sec.HashToken(refreshToken)

	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return fmt.Errorf("identity_service_logout_failed: %w", err)
	}

	return nil
}

// # Session Management

/*
RefreshSession implements the Refresh Token Rotation mechanism.

Description: Resolves the session, deletes it to prevent reuse (replay
attack mitigation), re-reads the account and its current role, and issues
a fresh pair of rotated tokens. Role changes made since login take effect
here, on the next rotation.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *LoginSession: New session credentials
  - error: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	userID, err := service.sessionRepository.Get(context, tokenHash)

	// If (err != nil) the token is either expired, already rotated, or invalid.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: drop the old session so the token cannot be replayed
	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("identity_service_refresh_revoke_failed: %w", err)
	}

	account, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found or removed")
	}

	role, err := service.accountRepository.FindRole(context, account.ID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("This account no longer has dashboard access")
		}
		return nil, fmt.Errorf("identity_service_role_lookup_failed: %w", err)
	}

	return service.openSession(context, account, role)
}

// openSession mints an access token and persists a fresh refresh session.
func (service *Service) openSession(context context.Context, account *Account, role sec.Role) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Email, role, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("identity_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(refreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("identity_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.sessionRepository.Set(context, sec.HashToken(refreshToken), account.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("identity_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Account:               account,
		Role:                  role,
	}, nil
}

// # Account Lookup

/*
GetAccount returns the account and its current access level for /me views.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Account: Hydrated entity
  - sec.Role: Current role from the profile row
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetAccount(context context.Context, id string) (*Account, sec.Role, error) {
	account, err := service.accountRepository.FindByID(context, id)
	if err != nil {
		return nil, "", err
	}

	role, err := service.accountRepository.FindRole(context, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, "", apperr.Forbidden("No profile is associated with your account.")
		}
		return nil, "", fmt.Errorf("identity_service_role_lookup_failed: %w", err)
	}

	return account, role, nil
}

// # Directory Port

/*
FindIDByEmail resolves an account ID from an email address.

Description: Serves the profile domain's admin transfer, which accepts an
email as the target selector.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - string: Account ID
  - error: apperr.NotFound or storage failures
*/
func (service *Service) FindIDByEmail(context context.Context, email string) (string, error) {
	account, err := service.accountRepository.FindByEmail(context, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	return account.ID, nil
}

/*
DeleteIdentity removes the login account behind a profile.

Description: Called by the profile domain after officer removals and term
resets. The profile row, if still present, cascade-deletes with the account.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteIdentity(context context.Context, id string) error {
	return service.accountRepository.Delete(context, id)
}

// normalizeEmail lowercases and trims an email for storage and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
