package officer

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

const officerColumns = `id, name, position, email, major, year, instagram, linkedin, bio, imageurl, sortorder, createdat, updatedat`

func (repository *PostgresRepository) ListOfficers(context context.Context) ([]*Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers ORDER BY sortorder ASC, name ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_officers")
	}
	defer rows.Close()

	officers := make([]*Officer, 0)
	for rows.Next() {
		o := &Officer{}
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Position, &o.Email, &o.Major, &o.Year,
			&o.Instagram, &o.LinkedIn, &o.Bio, &o.ImageURL, &o.SortOrder,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_officer")
		}
		officers = append(officers, o)
	}

	return officers, nil
}

func (repository *PostgresRepository) GetOfficer(context context.Context, id string) (*Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE id = $1`

	o := &Officer{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&o.ID, &o.Name, &o.Position, &o.Email, &o.Major, &o.Year,
		&o.Instagram, &o.LinkedIn, &o.Bio, &o.ImageURL, &o.SortOrder,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_officer")
	}

	return o, nil
}

func (repository *PostgresRepository) CreateOfficer(context context.Context, o *Officer) error {
	query := `
		INSERT INTO officers (id, name, position, email, major, year, instagram, linkedin, bio, imageurl, sortorder, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query,
		o.ID, o.Name, o.Position, o.Email, o.Major, o.Year,
		o.Instagram, o.LinkedIn, o.Bio, o.ImageURL, o.SortOrder,
	).Scan(&o.CreatedAt, &o.UpdatedAt)

	return dberr.Wrap(err, "create_officer")
}

func (repository *PostgresRepository) UpdateOfficer(context context.Context, o *Officer) error {
	query := `
		UPDATE officers
		SET name = $2, position = $3, email = $4, major = $5, year = $6,
		    instagram = $7, linkedin = $8, bio = $9, imageurl = $10, sortorder = $11,
		    updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query,
		o.ID, o.Name, o.Position, o.Email, o.Major, o.Year,
		o.Instagram, o.LinkedIn, o.Bio, o.ImageURL, o.SortOrder,
	).Scan(&o.UpdatedAt)

	return dberr.Wrap(err, "update_officer")
}

func (repository *PostgresRepository) DeleteOfficer(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM officers WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_officer")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
