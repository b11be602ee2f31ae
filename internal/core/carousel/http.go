package carousel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asuclub/asu-api/internal/platform/middleware"
	requestutil "github.com/asuclub/asu-api/internal/platform/request"
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
	// Public
	router.Get("/", handler.listImages)

	// Editor+
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createImage)
		editorRoute.Patch("/{id}", handler.updateImage)
		editorRoute.Delete("/{id}", handler.deleteImage)
	})
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	images, err := handler.service.ListImages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) createImage(writer http.ResponseWriter, request *http.Request) {
	var input Image

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateImage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
	var input Image
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateImage(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteImage(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
