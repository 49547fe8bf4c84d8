package operations

import (
	"context"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// DeleteEventTypeUseCase handles deleting an event type
type DeleteEventTypeUseCase struct {
	repo eventtype.Repository
}

// NewDeleteEventTypeUseCase creates a new DeleteEventTypeUseCase
func NewDeleteEventTypeUseCase(repo eventtype.Repository) *DeleteEventTypeUseCase {
	return &DeleteEventTypeUseCase{repo: repo}
}

// Execute deletes an event type by ID. The record is not required to
// exist: deleting a missing ID succeeds, making the operation idempotent.
func (uc *DeleteEventTypeUseCase) Execute(ctx context.Context, id string) common.Result[struct{}] {
	if id == "" {
		return common.Failure[struct{}](
			common.ValidationError(common.ErrCodeRequired, "Event type ID is required", nil),
		)
	}

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return common.Failure[struct{}](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to delete event type",
				map[string]any{"error": err.Error()}),
		)
	}

	return common.Success(struct{}{})
}
