// Package operations contains the event type use cases. Each use case
// validates its command, talks to the repository port, and reports its
// outcome as a common.Result for the inbound adapter to translate.
package operations

import (
	"context"
	"time"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// CreateEventTypeCommand contains the data needed to create an event type.
// Active is a pointer so an omitted flag can default to true.
type CreateEventTypeCommand struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// CreateEventTypeUseCase handles creating a new event type
type CreateEventTypeUseCase struct {
	repo eventtype.Repository
}

// NewCreateEventTypeUseCase creates a new CreateEventTypeUseCase
func NewCreateEventTypeUseCase(repo eventtype.Repository) *CreateEventTypeUseCase {
	return &CreateEventTypeUseCase{repo: repo}
}

// Execute creates a new event type. Any caller-supplied ID or timestamps
// are ignored: the store assigns the ID and both timestamps are stamped
// with the time of the call.
func (uc *CreateEventTypeUseCase) Execute(
	ctx context.Context,
	cmd CreateEventTypeCommand,
) common.Result[eventtype.EventType] {
	if field, message := eventtype.ValidateFields(cmd.Name, cmd.Description); field != "" {
		return common.Failure[eventtype.EventType](
			common.ValidationError(common.ErrCodeInvalidValue, message,
				map[string]any{"field": field}),
		)
	}

	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}

	now := time.Now()
	et := eventtype.EventType{
		Name:        cmd.Name,
		Description: cmd.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := uc.repo.Save(ctx, et)
	if err != nil {
		return common.Failure[eventtype.EventType](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to save event type",
				map[string]any{"error": err.Error()}),
		)
	}

	return common.Success(saved)
}
