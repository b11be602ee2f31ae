package officer

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

func (service *Service) ListOfficers(context context.Context) ([]*Officer, error) {
	return service.repo.ListOfficers(context)
}

func (service *Service) GetOfficer(context context.Context, id string) (*Officer, error) {
	return service.repo.GetOfficer(context, id)
}

func (service *Service) CreateOfficer(context context.Context, officer *Officer) error {
	if err := validateOfficer(officer); err != nil {
		return err
	}

	officer.ID = uuidv7.New()
	if err := service.repo.CreateOfficer(context, officer); err != nil {
		return err
	}

	service.logger.Info("officer_created", slog.String("name", officer.Name), slog.String("position", officer.Position))
	return nil
}

func (service *Service) UpdateOfficer(context context.Context, id string, officer *Officer) error {
	officer.ID = id
	if err := validateOfficer(officer); err != nil {
		return err
	}

	if err := service.repo.UpdateOfficer(context, officer); err != nil {
		return err
	}

	service.logger.Info("officer_updated", slog.String("officer_id", officer.ID))
	return nil
}

func (service *Service) DeleteOfficer(context context.Context, id string) error {
	if err := service.repo.DeleteOfficer(context, id); err != nil {
		return err
	}

	service.logger.Warn("officer_deleted", slog.String("officer_id", id))
	return nil
}

func validateOfficer(officer *Officer) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, officer.Name).MaxLen(FieldName, officer.Name, 120).
		Required(FieldPosition, officer.Position).MaxLen(FieldPosition, officer.Position, 120).
		Required(FieldEmail, officer.Email).Email(FieldEmail, officer.Email)

	if officer.ImageURL != nil && *officer.ImageURL != "" {
		validator.AbsoluteURL(FieldImageURL, *officer.ImageURL)
	}

	return validator.Err()
}
