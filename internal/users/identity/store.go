// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package identity

import (
	"context"
	"time"

	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Account Data Access

// AccountRepository defines the data access contract for dashboard accounts.
type AccountRepository interface {

	/*
		Create persists a new account together with its profile row, atomically.

		Parameters:
		  - context: context.Context
		  - account: *Account
		  - role: sec.Role (initial access level for the profile row)

		Returns:
		  - error: apperr.Conflict on a duplicate email, or persistence failures
	*/
	Create(context context.Context, account *Account, role sec.Role) error

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindRole returns the access level of the account's profile row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - sec.Role: Current role
		  - error: apperr.NotFound when the profile row is gone
	*/
	FindRole(context context.Context, id string) (sec.Role, error)

	/*
		Delete removes the account row. The profile row goes with it via
		the foreign key cascade.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository defines the contract for volatile refresh sessions.
//
// Sessions are keyed by the SHA-256 hash of the refresh token and expire
// on their own; there is no revocation list to maintain.
type SessionRepository interface {

	/*
		Set stores a session for the hashed refresh token.

		Parameters:
		  - context: context.Context
		  - tokenHash: string
		  - userID: string
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Set(context context.Context, tokenHash, userID string, ttl time.Duration) error

	/*
		Get resolves the user ID behind a hashed refresh token.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - string: UserID
		  - error: apperr.NotFound when absent or expired
	*/
	Get(context context.Context, tokenHash string) (string, error)

	/*
		Delete removes a session, invalidating its refresh token.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, tokenHash string) error
}
