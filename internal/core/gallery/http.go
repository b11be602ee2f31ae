package gallery

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
	router.Get("/", handler.listAlbums)
	router.Get("/{id}", handler.getAlbum)

	// Editor+
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createAlbum)
		editorRoute.Patch("/{id}", handler.updateAlbum)
		editorRoute.Delete("/{id}", handler.deleteAlbum)
	})
}

func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	albums, err := handler.service.ListAlbums(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, albums)
}

func (handler *Handler) getAlbum(writer http.ResponseWriter, request *http.Request) {
	album, err := handler.service.GetAlbum(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album)
}

func (handler *Handler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	var input Album

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAlbum(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAlbum(writer http.ResponseWriter, request *http.Request) {
	var input Album
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAlbum(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAlbum(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAlbum(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
