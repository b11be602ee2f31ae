package history

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
	router.Get("/", handler.listSections)

	// Editor+
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createSection)
		editorRoute.Patch("/{id}", handler.updateSection)
		editorRoute.Delete("/{id}", handler.deleteSection)
	})
}

func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.ListSections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) createSection(writer http.ResponseWriter, request *http.Request) {
	var input Section

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSection(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSection(writer http.ResponseWriter, request *http.Request) {
	var input Section
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSection(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSection(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSection(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
