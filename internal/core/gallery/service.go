package gallery

import (
	"context"
	"log/slog"

	"github.com/asuclub/asu-api/internal/platform/validate"
	"github.com/asuclub/asu-api/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAlbums(context context.Context) ([]*Album, error) {
	return service.repo.ListAlbums(context)
}

func (service *Service) GetAlbum(context context.Context, id string) (*Album, error) {
	return service.repo.GetAlbum(context, id)
}

func (service *Service) CreateAlbum(context context.Context, album *Album) error {
	if err := validateAlbum(album); err != nil {
		return err
	}

	album.ID = uuidv7.New()
	if album.PhotoURLs == nil {
		album.PhotoURLs = []string{}
	}

	if err := service.repo.CreateAlbum(context, album); err != nil {
		return err
	}

	service.logger.Info("album_created", slog.String("title", album.Title), slog.Int("photos", len(album.PhotoURLs)))
	return nil
}

func (service *Service) UpdateAlbum(context context.Context, id string, album *Album) error {
	album.ID = id
	if err := validateAlbum(album); err != nil {
		return err
	}

	if album.PhotoURLs == nil {
		album.PhotoURLs = []string{}
	}

	if err := service.repo.UpdateAlbum(context, album); err != nil {
		return err
	}

	service.logger.Info("album_updated", slog.String("album_id", album.ID))
	return nil
}

func (service *Service) DeleteAlbum(context context.Context, id string) error {
	if err := service.repo.DeleteAlbum(context, id); err != nil {
		return err
	}

	service.logger.Warn("album_deleted", slog.String("album_id", id))
	return nil
}

func validateAlbum(album *Album) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, album.Title).MaxLen(FieldTitle, album.Title, 200)

	if album.CoverURL != nil && *album.CoverURL != "" {
		validator.AbsoluteURL(FieldCoverURL, *album.CoverURL)
	}

	return validator.Err()
}
