package officer

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
	router.Get("/", handler.listOfficers)
	router.Get("/{id}", handler.getOfficer)

	// Editor+
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createOfficer)
		editorRoute.Patch("/{id}", handler.updateOfficer)
		editorRoute.Delete("/{id}", handler.deleteOfficer)
	})
}

func (handler *Handler) listOfficers(writer http.ResponseWriter, request *http.Request) {
	officers, err := handler.service.ListOfficers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, officers)
}

func (handler *Handler) getOfficer(writer http.ResponseWriter, request *http.Request) {
	officer, err := handler.service.GetOfficer(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, officer)
}

func (handler *Handler) createOfficer(writer http.ResponseWriter, request *http.Request) {
	var input Officer

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOfficer(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOfficer(writer http.ResponseWriter, request *http.Request) {
	var input Officer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOfficer(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOfficer(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteOfficer(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
