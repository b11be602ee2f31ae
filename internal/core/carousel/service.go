package carousel

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

func (service *Service) ListImages(context context.Context) ([]*Image, error) {
	return service.repo.ListImages(context)
}

func (service *Service) CreateImage(context context.Context, image *Image) error {
	if err := validateImage(image); err != nil {
		return err
	}

	image.ID = uuidv7.New()
	if err := service.repo.CreateImage(context, image); err != nil {
		return err
	}

	service.logger.Info("carousel_image_created", slog.String("image_id", image.ID))
	return nil
}

func (service *Service) UpdateImage(context context.Context, id string, image *Image) error {
	image.ID = id
	if err := validateImage(image); err != nil {
		return err
	}

	if err := service.repo.UpdateImage(context, image); err != nil {
		return err
	}

	service.logger.Info("carousel_image_updated", slog.String("image_id", image.ID))
	return nil
}

func (service *Service) DeleteImage(context context.Context, id string) error {
	if err := service.repo.DeleteImage(context, id); err != nil {
		return err
	}

	service.logger.Warn("carousel_image_deleted", slog.String("image_id", id))
	return nil
}

func validateImage(image *Image) error {
	validator := &validate.Validator{}
	validator.Required(FieldImageURL, image.ImageURL).AbsoluteURL(FieldImageURL, image.ImageURL)

	if image.Caption != nil {
		validator.MaxLen(FieldCaption, *image.Caption, 300)
	}

	return validator.Err()
}
