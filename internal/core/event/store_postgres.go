package event

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asuclub/asu-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, title, slug, startsat, displayuntil, location, link, description, imageurl, featured, createdat, updatedat`

func (repository *PostgresRepository) ListEvents(context context.Context, f Filter, limit, offset int) ([]*Event, int, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE TRUE`
	countQuery := `SELECT count(*) FROM events WHERE TRUE`

	if f.FeaturedOnly {
		query += ` AND featured`
		countQuery += ` AND featured`
	}
	if f.VisibleOnly {
		query += ` AND (displayuntil IS NULL OR displayuntil >= NOW())`
		countQuery += ` AND (displayuntil IS NULL OR displayuntil >= NOW())`
	}

	query += ` ORDER BY startsat DESC LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	events := make([]*Event, 0)
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Slug, &e.StartsAt, &e.DisplayUntil, &e.Location,
			&e.Link, &e.Description, &e.ImageURL, &e.Featured, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, total, nil
}

func (repository *PostgresRepository) GetEvent(context context.Context, id string) (*Event, error) {
	return repository.getOne(context, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id, "get_event")
}

func (repository *PostgresRepository) GetEventBySlug(context context.Context, slug string) (*Event, error) {
	return repository.getOne(context, `SELECT `+eventColumns+` FROM events WHERE slug = $1`, slug, "get_event_by_slug")
}

func (repository *PostgresRepository) SlugExists(context context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := repository.db.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, dberr.Wrap(err, "event_slug_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateEvent(context context.Context, e *Event) error {
	query := `
		INSERT INTO events (id, title, slug, startsat, displayuntil, location, link, description, imageurl, featured, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Title, e.Slug, e.StartsAt, e.DisplayUntil, e.Location,
		e.Link, e.Description, e.ImageURL, e.Featured,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_event")
}

func (repository *PostgresRepository) UpdateEvent(context context.Context, e *Event) error {
	query := `
		UPDATE events
		SET title = $2, slug = $3, startsat = $4, displayuntil = $5, location = $6,
		    link = $7, description = $8, imageurl = $9, featured = $10, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query,
		e.ID, e.Title, e.Slug, e.StartsAt, e.DisplayUntil, e.Location,
		e.Link, e.Description, e.ImageURL, e.Featured,
	).Scan(&e.UpdatedAt)

	return dberr.Wrap(err, "update_event")
}

func (repository *PostgresRepository) DeleteEvent(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) getOne(context context.Context, query, argument, action string) (*Event, error) {
	e := &Event{}
	err := repository.db.QueryRow(context, query, argument).Scan(
		&e.ID, &e.Title, &e.Slug, &e.StartsAt, &e.DisplayUntil, &e.Location,
		&e.Link, &e.Description, &e.ImageURL, &e.Featured, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return e, nil
}
