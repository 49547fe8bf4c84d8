package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go.supervision.dev/internal/platform/eventtype"
	"go.supervision.dev/internal/platform/eventtype/operations"
)

// EventTypeHandler handles event type endpoints using UseCases
// @Description Event type management API
type EventTypeHandler struct {
	createUseCase *operations.CreateEventTypeUseCase
	getUseCase    *operations.GetEventTypeUseCase
	updateUseCase *operations.UpdateEventTypeUseCase
	deleteUseCase *operations.DeleteEventTypeUseCase
	listUseCase   *operations.ListEventTypesUseCase
	searchUseCase *operations.SearchEventTypesUseCase
}

// NewEventTypeHandler creates a new event type handler with UseCases
func NewEventTypeHandler(repo eventtype.Repository) *EventTypeHandler {
	return &EventTypeHandler{
		createUseCase: operations.NewCreateEventTypeUseCase(repo),
		getUseCase:    operations.NewGetEventTypeUseCase(repo),
		updateUseCase: operations.NewUpdateEventTypeUseCase(repo),
		deleteUseCase: operations.NewDeleteEventTypeUseCase(repo),
		listUseCase:   operations.NewListEventTypesUseCase(repo),
		searchUseCase: operations.NewSearchEventTypesUseCase(repo),
	}
}

// Routes returns the router for event type endpoints
func (h *EventTypeHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/search", h.Search)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /event-types
// @Summary Create a new event type
// @Description Creates a new event type; timestamps are stamped server-side
// @Tags Event Types
// @Accept json
// @Produce json
// @Param request body operations.CreateEventTypeCommand true "Event type details"
// @Success 201 {object} eventtype.EventType
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types [post]
func (h *EventTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd operations.CreateEventTypeCommand
	if err := DecodeJSON(r, &cmd); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}

	result := h.createUseCase.Execute(r.Context(), cmd)
	WriteUseCaseResult(w, result, http.StatusCreated)
}

// Get handles GET /event-types/{id}
// @Summary Get event type by ID
// @Description Returns a single event type by its ID
// @Tags Event Types
// @Produce json
// @Param id path string true "Event Type ID"
// @Success 200 {object} eventtype.EventType
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types/{id} [get]
func (h *EventTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result := h.getUseCase.Execute(r.Context(), id)
	WriteUseCaseResult(w, result, http.StatusOK)
}

// Update handles PUT /event-types/{id}
// @Summary Update an event type
// @Description Updates an existing event type, preserving its creation time
// @Tags Event Types
// @Accept json
// @Produce json
// @Param id path string true "Event Type ID"
// @Param request body operations.UpdateEventTypeCommand true "Updated event type details"
// @Success 200 {object} eventtype.EventType
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types/{id} [put]
func (h *EventTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var cmd operations.UpdateEventTypeCommand
	if err := DecodeJSON(r, &cmd); err != nil {
		WriteBadRequest(w, "Invalid request body")
		return
	}
	cmd.ID = id

	result := h.updateUseCase.Execute(r.Context(), cmd)
	WriteUseCaseResult(w, result, http.StatusOK)
}

// Delete handles DELETE /event-types/{id}
// @Summary Delete an event type
// @Description Deletes an event type; deleting a missing ID is a no-op
// @Tags Event Types
// @Param id path string true "Event Type ID"
// @Success 204 "No Content"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types/{id} [delete]
func (h *EventTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result := h.deleteUseCase.Execute(r.Context(), id)
	if result.IsFailure() {
		WriteUseCaseError(w, result.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /event-types
// @Summary List event types
// @Description Returns one page of event types, newest first
// @Tags Event Types
// @Produce json
// @Param page query int false "Page number (zero-based)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} eventtype.Page[eventtype.EventType]
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types [get]
func (h *EventTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	req := pageRequestFromQuery(r)

	result := h.listUseCase.Execute(r.Context(), req)
	WriteUseCaseResult(w, result, http.StatusOK)
}

// Search handles GET /event-types/search
// @Summary Search event types
// @Description Text search over name and description, ranked by relevance
// @Tags Event Types
// @Produce json
// @Param query query string true "Search query"
// @Param page query int false "Page number (zero-based)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} eventtype.Page[eventtype.EventType]
// @Failure 422 {object} ErrorResponse "Blank search query"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/event-types/search [get]
func (h *EventTypeHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	req := pageRequestFromQuery(r)

	result := h.searchUseCase.Execute(r.Context(), query, req)
	WriteUseCaseResult(w, result, http.StatusOK)
}

// pageRequestFromQuery parses page/size query parameters, defaulting to
// page 0 and size 10. Negative or malformed values fall back to defaults.
func pageRequestFromQuery(r *http.Request) eventtype.PageRequest {
	page := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			page = parsed
		}
	}

	size := eventtype.DefaultPageSize
	if v := r.URL.Query().Get("size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}

	return eventtype.PageRequest{Page: page, Size: size}
}
