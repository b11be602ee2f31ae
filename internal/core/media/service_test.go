package media

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/constants"
)

type fakeBlobStore struct {
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (store *fakeBlobStore) Put(_ context.Context, key, _ string, content []byte) error {
	store.objects[key] = content
	return nil
}

func (store *fakeBlobStore) Delete(_ context.Context, key string) error {
	delete(store.objects, key)
	return nil
}

func (store *fakeBlobStore) PublicURL(key string) string {
	return "https://media.asuclub.org/" + key
}

func newTestService() (*Service, *fakeBlobStore) {
	blobs := newFakeBlobStore()
	return NewService(blobs, slog.New(slog.DiscardHandler)), blobs
}

func TestService_UploadImage_StoresUnderFolderWithExtension(t *testing.T) {
	service, blobs := newTestService()

	upload, err := service.UploadImage(context.Background(), "officers", "headshot.JPG", "image/jpeg", []byte("fake-jpeg"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, "officers/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".jpg"))
	assert.Equal(t, "https://media.asuclub.org/"+upload.Key, upload.URL)
	assert.Equal(t, int64(len("fake-jpeg")), upload.Size)
	assert.Contains(t, blobs.objects, upload.Key)
}

func TestService_UploadImage_DefaultsFolder(t *testing.T) {
	service, _ := newTestService()

	upload, err := service.UploadImage(context.Background(), "", "photo.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, constants.DefaultUploadFolder+"/"))
}

func TestService_UploadImage_RejectsNonImages(t *testing.T) {
	service, blobs := newTestService()

	_, err := service.UploadImage(context.Background(), "events", "notes.pdf", "application/pdf", []byte("pdf"))
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
	assert.Empty(t, blobs.objects)
}

func TestService_UploadImage_RejectsOversize(t *testing.T) {
	service, _ := newTestService()

	oversized := make([]byte, constants.MaxUploadSize+1)
	_, err := service.UploadImage(context.Background(), "events", "huge.png", "image/png", oversized)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
}

func TestService_UploadImage_RejectsTraversalFolders(t *testing.T) {
	service, _ := newTestService()

	_, err := service.UploadImage(context.Background(), "../secrets", "x.png", "image/png", []byte("png"))
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "BAD_REQUEST", ae.Code)
}
