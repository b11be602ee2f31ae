package gallery

import "context"

type Repository interface {
	ListAlbums(context context.Context) ([]*Album, error)
	GetAlbum(context context.Context, id string) (*Album, error)
	CreateAlbum(context context.Context, album *Album) error
	UpdateAlbum(context context.Context, album *Album) error
	DeleteAlbum(context context.Context, id string) error
}
