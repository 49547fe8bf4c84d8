package api

import (
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"go.supervision.dev/internal/platform/eventtype"
)

// Handlers contains all API handlers
type Handlers struct {
	eventTypeRepo eventtype.Repository

	eventTypeHandler *EventTypeHandler
}

// NewHandlers creates all API handlers
func NewHandlers(db *mongo.Database) *Handlers {
	h := &Handlers{}

	h.eventTypeRepo = eventtype.NewRepository(db)
	h.eventTypeHandler = NewEventTypeHandler(h.eventTypeRepo)

	return h
}

// MountRoutes mounts all API routes on the given router
func (h *Handlers) MountRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/event-types", h.eventTypeHandler.Routes())
	})
}
