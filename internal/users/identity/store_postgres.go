// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/dberr"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Account Repository

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of [AccountRepository].
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
Create persists a new account and its profile row in one transaction.

Description: The two inserts always commit together, so an account can never
exist without an access level nor the other way around.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)
  - role: sec.Role (initial access level)

Returns:
  - error: apperr.Conflict on a duplicate email, or wrapped storage errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account, role sec.Role) error {
	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "account_create_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	const accountQuery = `
		INSERT INTO accounts (id, email, passwordhash, displayname, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = transaction.Exec(context, accountQuery,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.DisplayName,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if dberr.IsUniqueViolation(err, "accounts_email_key") {
			return apperr.Conflict("Email is already registered")
		}
		return dberr.Wrap(err, "account_create")
	}

	const profileQuery = `
		INSERT INTO profiles (id, role, createdat)
		VALUES ($1, $2, $3)`

	if _, err := transaction.Exec(context, profileQuery, account.ID, string(role), account.CreatedAt); err != nil {
		return dberr.Wrap(err, "account_create_profile")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "account_create_commit")
	}

	return nil
}

/*
FindByID retrieves an account record by its primary key.
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, displayname, createdat, updatedat
		FROM accounts
		WHERE id = $1`

	return repository.scanOne(context, query, id)
}

/*
FindByEmail retrieves an account record by its unique email address.
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, displayname, createdat, updatedat
		FROM accounts
		WHERE email = $1`

	return repository.scanOne(context, query, email)
}

/*
FindRole returns the access level attached to the account's profile row.

Description: A missing or corrupt profile row reads as NotFound; the caller
decides whether that means "deny" or "no dashboard access".
*/
func (repository *PostgresAccountRepository) FindRole(context context.Context, id string) (sec.Role, error) {
	const query = `SELECT role FROM profiles WHERE id = $1`

	var rawRole string
	err := repository.pool.QueryRow(context, query, id).Scan(&rawRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("Profile")
		}
		return "", dberr.Wrap(err, "account_find_role")
	}

	role, ok := sec.ParseRole(rawRole)
	if !ok {
		return "", apperr.NotFound("Profile")
	}

	return role, nil
}

/*
Delete removes the account row; the profile cascade-deletes with it.
*/
func (repository *PostgresAccountRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM accounts WHERE id = $1`

	if _, err := repository.pool.Exec(context, query, id); err != nil {
		return dberr.Wrap(err, "account_delete")
	}

	return nil
}

// scanOne runs a single-row account query and maps absence to NotFound.
func (repository *PostgresAccountRepository) scanOne(context context.Context, query string, argument any) (*Account, error) {
	account := &Account{}
	err := repository.pool.QueryRow(context, query, argument).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.DisplayName,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, dberr.Wrap(err, "account_find")
	}

	return account, nil
}
