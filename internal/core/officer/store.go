package officer

import "context"

type Repository interface {
	ListOfficers(context context.Context) ([]*Officer, error)
	GetOfficer(context context.Context, id string) (*Officer, error)
	CreateOfficer(context context.Context, officer *Officer) error
	UpdateOfficer(context context.Context, officer *Officer) error
	DeleteOfficer(context context.Context, id string) error
}
