package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asuclub/asu-api/internal/platform/middleware"
	requestutil "github.com/asuclub/asu-api/internal/platform/request"
	"github.com/asuclub/asu-api/internal/platform/respond"
	"github.com/asuclub/asu-api/internal/platform/sec"
	"github.com/asuclub/asu-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Get("/by-slug/{slug}", handler.getEventBySlug)

	// Editor+
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createEvent)
		editorRoute.Patch("/{id}", handler.updateEvent)
		editorRoute.Delete("/{id}", handler.deleteEvent)
	})
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		FeaturedOnly: request.URL.Query().Get("featured") == "true",
		VisibleOnly:  request.URL.Query().Get("all") != "true",
	}

	events, total, err := handler.service.ListEvents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.GetEvent(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) getEventBySlug(writer http.ResponseWriter, request *http.Request) {
	event, err := handler.service.GetEventBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEvent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateEvent(request.Context(), requestutil.Param(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteEvent(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
