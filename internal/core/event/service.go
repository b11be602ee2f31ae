package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asuclub/asu-api/internal/platform/validate"
	"github.com/asuclub/asu-api/pkg/slug"
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

func (service *Service) ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	return service.repo.ListEvents(context, filter, limit, offset)
}

func (service *Service) GetEvent(context context.Context, id string) (*Event, error) {
	return service.repo.GetEvent(context, id)
}

func (service *Service) GetEventBySlug(context context.Context, slugValue string) (*Event, error) {
	return service.repo.GetEventBySlug(context, slugValue)
}

func (service *Service) CreateEvent(context context.Context, event *Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	event.ID = uuidv7.New()

	uniqueSlug, err := service.uniqueSlug(context, event.Title, event.ID)
	if err != nil {
		return err
	}
	event.Slug = uniqueSlug

	if err := service.repo.CreateEvent(context, event); err != nil {
		return err
	}

	service.logger.Info("event_created", slog.String("title", event.Title), slog.String("slug", event.Slug))
	return nil
}

func (service *Service) UpdateEvent(context context.Context, id string, event *Event) error {
	event.ID = id
	if err := validateEvent(event); err != nil {
		return err
	}

	existing, err := service.repo.GetEvent(context, id)
	if err != nil {
		return err
	}

	// The slug only moves when the title does, so bookmarked links survive
	// ordinary edits.
	event.Slug = existing.Slug
	if event.Title != existing.Title {
		uniqueSlug, err := service.uniqueSlug(context, event.Title, id)
		if err != nil {
			return err
		}
		event.Slug = uniqueSlug
	}

	if err := service.repo.UpdateEvent(context, event); err != nil {
		return err
	}

	service.logger.Info("event_updated", slog.String("event_id", event.ID))
	return nil
}

func (service *Service) DeleteEvent(context context.Context, id string) error {
	if err := service.repo.DeleteEvent(context, id); err != nil {
		return err
	}

	service.logger.Warn("event_deleted", slog.String("event_id", id))
	return nil
}

// uniqueSlug derives a slug from the title and suffixes it with a counter
// until it no longer collides with another event.
func (service *Service) uniqueSlug(context context.Context, title, excludeID string) (string, error) {
	base := slug.From(title)
	candidate := base

	for counter := 2; ; counter++ {
		exists, err := service.repo.SlugExists(context, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func validateEvent(event *Event) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, event.Title).MaxLen(FieldTitle, event.Title, 200)
	validator.Custom(FieldStartsAt, event.StartsAt.IsZero(), "must be a valid date")

	if event.Link != nil && *event.Link != "" {
		validator.AbsoluteURL(FieldLink, *event.Link)
	}
	if event.ImageURL != nil && *event.ImageURL != "" {
		validator.AbsoluteURL(FieldImageURL, *event.ImageURL)
	}

	return validator.Err()
}
