package operations

import (
	"context"

	"golang.org/x/sync/errgroup"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// ListEventTypesUseCase handles the paginated listing of event types
type ListEventTypesUseCase struct {
	repo eventtype.Repository
}

// NewListEventTypesUseCase creates a new ListEventTypesUseCase
func NewListEventTypesUseCase(repo eventtype.Repository) *ListEventTypesUseCase {
	return &ListEventTypesUseCase{repo: repo}
}

// Execute fetches one page of event types and the total count as two
// independent queries running concurrently, then assembles the page
// envelope once both have completed. Content ordering is whatever the
// repository returned.
func (uc *ListEventTypesUseCase) Execute(
	ctx context.Context,
	req eventtype.PageRequest,
) common.Result[eventtype.Page[eventtype.EventType]] {
	var (
		content []eventtype.EventType
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = uc.repo.FindAll(gctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return common.Failure[eventtype.Page[eventtype.EventType]](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to list event types",
				map[string]any{"error": err.Error()}),
		)
	}

	return common.Success(eventtype.NewPage(content, req, total))
}
