package event

import "context"

type Repository interface {
	ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error)
	GetEvent(context context.Context, id string) (*Event, error)
	GetEventBySlug(context context.Context, slug string) (*Event, error)
	SlugExists(context context.Context, slug, excludeID string) (bool, error)
	CreateEvent(context context.Context, event *Event) error
	UpdateEvent(context context.Context, event *Event) error
	DeleteEvent(context context.Context, id string) error
}
