package history

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

func (repository *PostgresRepository) ListSections(context context.Context) ([]*Section, error) {
	query := `SELECT id, heading, body, sortorder, createdat, updatedat FROM history_sections ORDER BY sortorder ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_history_sections")
	}
	defer rows.Close()

	sections := make([]*Section, 0)
	for rows.Next() {
		s := &Section{}
		if err := rows.Scan(&s.ID, &s.Heading, &s.Body, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_history_section")
		}
		sections = append(sections, s)
	}

	return sections, nil
}

func (repository *PostgresRepository) CreateSection(context context.Context, s *Section) error {
	query := `
		INSERT INTO history_sections (id, heading, body, sortorder, createdat, updatedat)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query, s.ID, s.Heading, s.Body, s.SortOrder).
		Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "create_history_section")
}

func (repository *PostgresRepository) UpdateSection(context context.Context, s *Section) error {
	query := `
		UPDATE history_sections
		SET heading = $2, body = $3, sortorder = $4, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query, s.ID, s.Heading, s.Body, s.SortOrder).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_history_section")
}

func (repository *PostgresRepository) DeleteSection(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM history_sections WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_history_section")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
