package eventtype

import "math"

// DefaultPageSize is applied at the inbound boundary when no size is given.
const DefaultPageSize = 10

// SortField describes one sort key for a paginated query.
type SortField struct {
	Field      string
	Descending bool
}

// PageRequest describes the slice of a result set to fetch.
// Page is zero-based. Sort is optional; repositories fall back to their
// default ordering when it is empty.
type PageRequest struct {
	Page int
	Size int
	Sort []SortField
}

// Skip returns the number of documents to skip for this request.
func (p PageRequest) Skip() int64 {
	return int64(p.Page) * int64(p.Size)
}

// Limit returns the maximum number of documents to fetch.
func (p PageRequest) Limit() int64 {
	return int64(p.Size)
}

// PageMetadata describes the position and extent of a page.
type PageMetadata struct {
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Page is a bounded slice of a result set plus its metadata.
type Page[T any] struct {
	Content  []T          `json:"content"`
	Metadata PageMetadata `json:"metadata"`
}

// NewPage assembles a page from independently fetched content and total
// count. Content ordering is preserved as the repository returned it.
func NewPage[T any](content []T, req PageRequest, totalElements int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content: content,
		Metadata: PageMetadata{
			PageNumber:    req.Page,
			PageSize:      req.Size,
			TotalElements: totalElements,
			TotalPages:    TotalPages(totalElements, req.Size),
		},
	}
}

// TotalPages computes ceil(totalElements / size) using real-valued
// division. A size of zero yields zero pages regardless of the count.
func TotalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalElements) / float64(size)))
}
