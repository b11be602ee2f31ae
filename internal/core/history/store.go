package history

import "context"

type Repository interface {
	ListSections(context context.Context) ([]*Section, error)
	CreateSection(context context.Context, section *Section) error
	UpdateSection(context context.Context, section *Section) error
	DeleteSection(context context.Context, id string) error
}
