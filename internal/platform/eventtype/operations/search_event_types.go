package operations

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// SearchEventTypesUseCase handles paginated text search over event types
type SearchEventTypesUseCase struct {
	repo eventtype.Repository
}

// NewSearchEventTypesUseCase creates a new SearchEventTypesUseCase
func NewSearchEventTypesUseCase(repo eventtype.Repository) *SearchEventTypesUseCase {
	return &SearchEventTypesUseCase{repo: repo}
}

// Execute runs a text search and its match count as two independent
// concurrent queries and assembles the page envelope. A blank query is a
// business rule violation, rejected before any repository call. The count
// ignores pagination bounds: it covers all matches, not the current page.
func (uc *SearchEventTypesUseCase) Execute(
	ctx context.Context,
	query string,
	req eventtype.PageRequest,
) common.Result[eventtype.Page[eventtype.EventType]] {
	if strings.TrimSpace(query) == "" {
		return common.Failure[eventtype.Page[eventtype.EventType]](
			common.BusinessRuleError(common.ErrCodeBlankQuery,
				"Search query cannot be blank", nil),
		)
	}

	var (
		content []eventtype.EventType
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		content, err = uc.repo.Search(gctx, query, req)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountByQuery(gctx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		return common.Failure[eventtype.Page[eventtype.EventType]](
			common.InternalError(common.ErrCodeRepositoryFailure,
				"Failed to search event types",
				map[string]any{"error": err.Error()}),
		)
	}

	return common.Success(eventtype.NewPage(content, req, total))
}
