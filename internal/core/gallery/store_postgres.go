package gallery

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

const albumColumns = `id, title, takenon, coverurl, photourls, createdat, updatedat`

func (repository *PostgresRepository) ListAlbums(context context.Context) ([]*Album, error) {
	query := `SELECT ` + albumColumns + ` FROM gallery_albums ORDER BY takenon DESC NULLS LAST, createdat DESC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	albums := make([]*Album, 0)
	for rows.Next() {
		a := &Album{}
		if err := rows.Scan(&a.ID, &a.Title, &a.TakenOn, &a.CoverURL, &a.PhotoURLs, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		albums = append(albums, a)
	}

	return albums, nil
}

func (repository *PostgresRepository) GetAlbum(context context.Context, id string) (*Album, error) {
	query := `SELECT ` + albumColumns + ` FROM gallery_albums WHERE id = $1`

	a := &Album{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Title, &a.TakenOn, &a.CoverURL, &a.PhotoURLs, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_album")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateAlbum(context context.Context, a *Album) error {
	query := `
		INSERT INTO gallery_albums (id, title, takenon, coverurl, photourls, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING createdat, updatedat`

	err := repository.db.QueryRow(context, query, a.ID, a.Title, a.TakenOn, a.CoverURL, a.PhotoURLs).
		Scan(&a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_album")
}

func (repository *PostgresRepository) UpdateAlbum(context context.Context, a *Album) error {
	query := `
		UPDATE gallery_albums
		SET title = $2, takenon = $3, coverurl = $4, photourls = $5, updatedat = NOW()
		WHERE id = $1
		RETURNING updatedat`

	err := repository.db.QueryRow(context, query, a.ID, a.Title, a.TakenOn, a.CoverURL, a.PhotoURLs).
		Scan(&a.UpdatedAt)

	return dberr.Wrap(err, "update_album")
}

func (repository *PostgresRepository) DeleteAlbum(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM gallery_albums WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_album")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
