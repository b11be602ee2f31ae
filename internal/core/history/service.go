package history

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

func (service *Service) ListSections(context context.Context) ([]*Section, error) {
	return service.repo.ListSections(context)
}

func (service *Service) CreateSection(context context.Context, section *Section) error {
	if err := validateSection(section); err != nil {
		return err
	}

	section.ID = uuidv7.New()
	if err := service.repo.CreateSection(context, section); err != nil {
		return err
	}

	service.logger.Info("history_section_created", slog.String("heading", section.Heading))
	return nil
}

func (service *Service) UpdateSection(context context.Context, id string, section *Section) error {
	section.ID = id
	if err := validateSection(section); err != nil {
		return err
	}

	if err := service.repo.UpdateSection(context, section); err != nil {
		return err
	}

	service.logger.Info("history_section_updated", slog.String("section_id", section.ID))
	return nil
}

func (service *Service) DeleteSection(context context.Context, id string) error {
	if err := service.repo.DeleteSection(context, id); err != nil {
		return err
	}

	service.logger.Warn("history_section_deleted", slog.String("section_id", id))
	return nil
}

func validateSection(section *Section) error {
	validator := &validate.Validator{}
	validator.Required(FieldHeading, section.Heading).MaxLen(FieldHeading, section.Heading, 200).
		Required(FieldBody, section.Body)

	return validator.Err()
}
