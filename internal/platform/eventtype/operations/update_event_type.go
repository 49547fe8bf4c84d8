package operations

import (
	"context"
	"time"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// UpdateEventTypeCommand contains the data needed to update an event type
type UpdateEventTypeCommand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// UpdateEventTypeUseCase handles updating an event type
type UpdateEventTypeUseCase struct {
	repo eventtype.Repository
}

// NewUpdateEventTypeUseCase creates a new UpdateEventTypeUseCase
func NewUpdateEventTypeUseCase(repo eventtype.Repository) *UpdateEventTypeUseCase {
	return &UpdateEventTypeUseCase{repo: repo}
}

// Execute updates an existing event type. The record's ID and CreatedAt
// are preserved, the incoming fields replace the old ones, and UpdatedAt
// is stamped fresh. A missing ID is a not-found failure, never an upsert.
func (uc *UpdateEventTypeUseCase) Execute(
	ctx context.Context,
	cmd UpdateEventTypeCommand,
) common.Result[eventtype.EventType] {
	if cmd.ID == "" {
		return common.Failure[eventtype.EventType](
			common.ValidationError(common.ErrCodeRequired, "Event type ID is required", nil),
		)
	}

	if field, message := eventtype.ValidateFields(cmd.Name, cmd.Description); field != "" {
		return common.Failure[eventtype.EventType](
			common.ValidationError(common.ErrCodeInvalidValue, message,
				map[string]any{"field": field}),
		)
	}

	existing, err := uc.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return common.Failure[eventtype.EventType](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to find event type",
				map[string]any{"error": err.Error()}),
		)
	}
	if existing == nil {
		return common.Failure[eventtype.EventType](
			common.NotFoundError(common.ErrCodeEventTypeNotFound,
				"Event type not found",
				map[string]any{"id": cmd.ID}),
		)
	}

	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}

	updated := existing.Updated(cmd.Name, cmd.Description, active, time.Now())

	saved, err := uc.repo.Save(ctx, updated)
	if err != nil {
		return common.Failure[eventtype.EventType](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to save event type",
				map[string]any{"error": err.Error()}),
		)
	}

	return common.Success(saved)
}
