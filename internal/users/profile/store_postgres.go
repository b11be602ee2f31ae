// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/dberr"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

// # Profile Repository

// PostgresRepository implements [Repository] using pgx.
//
// Owner immutability is pushed into the SQL itself: every mutating statement
// carries a `role <> 'owner'` predicate, so even a buggy caller cannot touch
// the owner row. The single-admin invariant is backed by the partial unique
// index uq_profiles_single_admin (see migrations).
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of [Repository].
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
FindByID retrieves a profile row by ID.

Description: A row whose stored role is outside the closed enum is reported
as NotFound — readers treat invalid roles as absent.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Profile: Hydrated profile
  - error: apperr.NotFound or wrapped storage errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Profile, error) {
	const query = `
		SELECT id, role, createdat
		FROM profiles
		WHERE id = $1`

	var (
		p       Profile
		rawRole string
	)

	err := repository.pool.QueryRow(context, query, id).Scan(&p.ID, &rawRole, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Profile")
		}
		return nil, dberr.Wrap(err, "profile_find_by_id")
	}

	role, ok := sec.ParseRole(rawRole)
	if !ok {
		return nil, apperr.NotFound("Profile")
	}

	p.Role = role
	return &p, nil
}

/*
FindAdminID returns the profile ID currently holding the admin seat.

Returns:
  - string: Admin profile ID, or "" when the seat is vacant
  - error: Wrapped storage errors
*/
func (repository *PostgresRepository) FindAdminID(context context.Context) (string, error) {
	const query = `SELECT id FROM profiles WHERE role = 'admin' LIMIT 1`

	var id string
	err := repository.pool.QueryRow(context, query).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", dberr.Wrap(err, "profile_find_admin")
	}

	return id, nil
}

/*
List returns all profiles joined with their identity emails, oldest first.
*/
func (repository *PostgresRepository) List(context context.Context) ([]Profile, error) {
	const query = `
		SELECT p.id, COALESCE(a.email, ''), p.role, p.createdat
		FROM profiles p
		LEFT JOIN accounts a ON a.id = p.id
		ORDER BY p.createdat ASC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "profile_list")
	}
	defer rows.Close()

	return scanProfiles(rows)
}

/*
ListByRoles returns all profiles whose role is in the given set, excluding
excludeID.
*/
func (repository *PostgresRepository) ListByRoles(context context.Context, roles []sec.Role, excludeID string) ([]Profile, error) {
	const query = `
		SELECT p.id, COALESCE(a.email, ''), p.role, p.createdat
		FROM profiles p
		LEFT JOIN accounts a ON a.id = p.id
		WHERE p.role = ANY($1) AND p.id <> $2
		ORDER BY p.createdat ASC`

	roleStrings := make([]string, 0, len(roles))
	for _, role := range roles {
		roleStrings = append(roleStrings, string(role))
	}

	rows, err := repository.pool.Query(context, query, roleStrings, excludeID)
	if err != nil {
		return nil, dberr.Wrap(err, "profile_list_by_roles")
	}
	defer rows.Close()

	return scanProfiles(rows)
}

/*
UpdateRole overwrites the role of a non-owner profile.

Description: The `role <> 'owner'` predicate is the last-line defense behind
the policy engine. A unique-violation from the single-admin partial index is
surfaced as a conflict for the caller to retry or report.

Returns:
  - error: apperr.NotFound if no non-owner row matched; apperr.Conflict on
    the single-admin index; wrapped storage errors otherwise
*/
func (repository *PostgresRepository) UpdateRole(context context.Context, id string, role sec.Role) error {
	const query = `
		UPDATE profiles
		SET role = $2
		WHERE id = $1 AND role <> 'owner'`

	tag, err := repository.pool.Exec(context, query, id, string(role))
	if err != nil {
		if dberr.IsUniqueViolation(err, "uq_profiles_single_admin") {
			return apperr.Conflict("Another profile already holds the admin seat.")
		}
		return dberr.Wrap(err, "profile_update_role")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Target profile")
	}

	return nil
}

/*
Delete removes a single non-owner profile row.
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM profiles WHERE id = $1 AND role <> 'owner'`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "profile_delete")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Target profile")
	}

	return nil
}

/*
TransferAdmin removes the outgoing profiles and promotes the target in one
transaction.

Description: Committing the removals and the promotion together means a crash
can never leave the seat vacant with editors already gone — the caller either
sees the full transfer or none of it.
*/
func (repository *PostgresRepository) TransferAdmin(context context.Context, targetID string, removeIDs []string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "profile_transfer_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	if len(removeIDs) > 0 {
		const removeQuery = `DELETE FROM profiles WHERE id = ANY($1) AND role <> 'owner'`
		if _, err := transaction.Exec(context, removeQuery, removeIDs); err != nil {
			return dberr.Wrap(err, "profile_transfer_remove")
		}
	}

	const promoteQuery = `
		UPDATE profiles
		SET role = 'admin'
		WHERE id = $1 AND role <> 'owner'`

	tag, err := transaction.Exec(context, promoteQuery, targetID)
	if err != nil {
		if dberr.IsUniqueViolation(err, "uq_profiles_single_admin") {
			return apperr.Conflict("Another profile already holds the admin seat.")
		}
		return dberr.Wrap(err, "profile_transfer_promote")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Target profile")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "profile_transfer_commit")
	}

	return nil
}

/*
DeleteAllExceptOwner bulk-deletes every non-owner profile in one statement.

Returns:
  - []string: IDs of the deleted profiles (empty on a second run)
  - error: Wrapped storage errors (nothing is deleted on failure)
*/
func (repository *PostgresRepository) DeleteAllExceptOwner(context context.Context) ([]string, error) {
	const query = `DELETE FROM profiles WHERE role <> 'owner' RETURNING id`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "profile_reset_delete")
	}
	defer rows.Close()

	deletedIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "profile_reset_scan")
		}
		deletedIDs = append(deletedIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "profile_reset_rows")
	}

	return deletedIDs, nil
}

// scanProfiles drains a (id, email, role, createdat) row set, skipping rows
// whose stored role falls outside the closed enum.
func scanProfiles(rows pgx.Rows) ([]Profile, error) {
	profiles := make([]Profile, 0)

	for rows.Next() {
		var (
			p       Profile
			rawRole string
		)

		if err := rows.Scan(&p.ID, &p.Email, &rawRole, &p.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "profile_scan")
		}

		role, ok := sec.ParseRole(rawRole)
		if !ok {
			// Invalid stored role: the row is invisible to readers.
			continue
		}

		p.Role = role
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile_rows_failed: %w", err)
	}

	return profiles, nil
}
