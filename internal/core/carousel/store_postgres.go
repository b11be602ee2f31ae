package carousel

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

func (repository *PostgresRepository) ListImages(context context.Context) ([]*Image, error) {
	query := `SELECT id, imageurl, caption, sortorder, createdat FROM carousel_images ORDER BY sortorder ASC, createdat ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_carousel_images")
	}
	defer rows.Close()

	images := make([]*Image, 0)
	for rows.Next() {
		image := &Image{}
		if err := rows.Scan(&image.ID, &image.ImageURL, &image.Caption, &image.SortOrder, &image.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_carousel_image")
		}
		images = append(images, image)
	}

	return images, nil
}

func (repository *PostgresRepository) CreateImage(context context.Context, image *Image) error {
	query := `
		INSERT INTO carousel_images (id, imageurl, caption, sortorder, createdat)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING createdat`

	err := repository.db.QueryRow(context, query, image.ID, image.ImageURL, image.Caption, image.SortOrder).
		Scan(&image.CreatedAt)

	return dberr.Wrap(err, "create_carousel_image")
}

func (repository *PostgresRepository) UpdateImage(context context.Context, image *Image) error {
	query := `
		UPDATE carousel_images
		SET imageurl = $2, caption = $3, sortorder = $4
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, image.ID, image.ImageURL, image.Caption, image.SortOrder)
	if err != nil {
		return dberr.Wrap(err, "update_carousel_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteImage(context context.Context, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM carousel_images WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_carousel_image")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
