// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

/*
Package identity implements login accounts and session management for the
admin dashboard.

It owns the accounts table and the Redis-backed refresh sessions. Access
levels live one layer up in the profile domain; this package only records
who can sign in, not what they may do once signed in.

# Architecture

An account and its profile are created together at registration and share
the same ID. Deleting an account cascades to the profile row, which is why
the profile domain reaches back into this package (through its Directory
port) when it removes officers.
*/
package identity

import (
	"time"
)

// # Domain Entities

// Account represents a registered dashboard login.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the identity domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)

// refreshTokenLength is the byte length of the random refresh token.
const refreshTokenLength = 32
