package media

import "context"

// Upload describes a stored media object.
type Upload struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// BlobStore abstracts the object storage behind media uploads.
type BlobStore interface {
	Put(context context.Context, key, contentType string, content []byte) error
	Delete(context context.Context, key string) error
	// PublicURL maps an object key to the URL the site serves it from.
	PublicURL(key string) string
}
