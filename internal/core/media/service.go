package media

import (
	"context"
	"log/slog"
	"path"
	"regexp"
	"strings"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/constants"
	"github.com/asuclub/asu-api/pkg/uuidv7"
)

type Service struct {
	blobs  BlobStore
	logger *slog.Logger
}

func NewService(blobs BlobStore, logger *slog.Logger) *Service {
	return &Service{
		blobs:  blobs,
		logger: logger,
	}
}

var folderPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// UploadImage stores an image under <folder>/<uuid><ext> and returns its
// public URL. Only image content types are accepted; the original filename
// contributes nothing but its extension.
func (service *Service) UploadImage(context context.Context, folder, filename, contentType string, content []byte) (*Upload, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.BadRequest("Only image uploads are accepted.")
	}
	if int64(len(content)) > constants.MaxUploadSize {
		return nil, apperr.BadRequest("The image exceeds the maximum upload size.")
	}

	if folder == "" {
		folder = constants.DefaultUploadFolder
	}
	if !folderPattern.MatchString(folder) {
		return nil, apperr.BadRequest("Invalid upload folder.")
	}

	extension := strings.ToLower(path.Ext(filename))
	key := folder + "/" + uuidv7.New() + extension

	if err := service.blobs.Put(context, key, contentType, content); err != nil {
		return nil, err
	}

	upload := &Upload{
		Key:         key,
		URL:         service.blobs.PublicURL(key),
		ContentType: contentType,
		Size:        int64(len(content)),
	}

	service.logger.Info("media_uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", upload.Size),
	)

	return upload, nil
}
