package eventtype

import (
	"strings"
	"time"
)

// Field constraints enforced before persistence is attempted.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// EventType represents a supervised event type.
// Collection: event_types
//
// The value is treated as immutable: use cases never mutate a fetched
// record in place, they build a replacement with Updated.
type EventType struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Updated returns a copy with the mutable fields replaced and UpdatedAt
// refreshed. ID and CreatedAt are preserved.
func (e EventType) Updated(name, description string, active bool, now time.Time) EventType {
	return EventType{
		ID:          e.ID,
		Name:        name,
		Description: description,
		Active:      active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   now,
	}
}

// ValidateFields checks the name/description constraints.
// Returns the offending field name and a message, or "" when valid.
func ValidateFields(name, description string) (field, message string) {
	if strings.TrimSpace(name) == "" {
		return "name", "Name cannot be blank"
	}
	if len(name) > MaxNameLength {
		return "name", "Name cannot exceed 100 characters"
	}
	if len(description) > MaxDescriptionLength {
		return "description", "Description cannot exceed 500 characters"
	}
	return "", ""
}
