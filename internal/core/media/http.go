package media

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asuclub/asu-api/internal/platform/apperr"
	"github.com/asuclub/asu-api/internal/platform/constants"
	"github.com/asuclub/asu-api/internal/platform/middleware"
	"github.com/asuclub/asu-api/internal/platform/respond"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireRole(sec.RoleEditor)).Post("/", handler.upload)
}

// upload accepts a multipart form with a "file" part and an optional
// "folder" field.
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	// MaxBytesReader caps the whole request body before the multipart
	// parser buffers anything.
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadSize+4096)

	if err := request.ParseMultipartForm(constants.MaxUploadSize); err != nil {
		respond.Error(writer, request, apperr.BadRequest("The image exceeds the maximum upload size."))
		return
	}

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("A \"file\" form part is required."))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("The upload could not be read."))
		return
	}

	upload, err := handler.service.UploadImage(
		request.Context(),
		request.FormValue("folder"),
		header.Filename,
		header.Header.Get("Content-Type"),
		content,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, upload)
}
