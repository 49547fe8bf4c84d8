package operations

import (
	"context"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// GetEventTypeUseCase handles fetching a single event type by ID
type GetEventTypeUseCase struct {
	repo eventtype.Repository
}

// NewGetEventTypeUseCase creates a new GetEventTypeUseCase
func NewGetEventTypeUseCase(repo eventtype.Repository) *GetEventTypeUseCase {
	return &GetEventTypeUseCase{repo: repo}
}

// Execute fetches an event type by ID. A missing record is reported as a
// not-found failure for the boundary to translate.
func (uc *GetEventTypeUseCase) Execute(ctx context.Context, id string) common.Result[eventtype.EventType] {
	if id == "" {
		return common.Failure[eventtype.EventType](
			common.ValidationError(common.ErrCodeRequired, "Event type ID is required", nil),
		)
	}

	et, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return common.Failure[eventtype.EventType](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to find event type",
				map[string]any{"error": err.Error()}),
		)
	}
	if et == nil {
		return common.Failure[eventtype.EventType](
			common.NotFoundError(common.ErrCodeEventTypeNotFound,
				"Event type not found",
				map[string]any{"id": id}),
		)
	}

	return common.Success(*et)
}
