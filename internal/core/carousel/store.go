package carousel

import "context"

type Repository interface {
	ListImages(context context.Context) ([]*Image, error)
	CreateImage(context context.Context, image *Image) error
	UpdateImage(context context.Context, image *Image) error
	DeleteImage(context context.Context, id string) error
}
