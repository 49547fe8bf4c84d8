package eventtype

import "context"

// Repository defines the persistence port for event types.
// All implementations must be wrapped with instrumentation.
type Repository interface {
	// Save upserts by ID: insert when the ID is empty (the store assigns
	// one), overwrite otherwise. Returns the persisted entity.
	Save(ctx context.Context, et EventType) (EventType, error)

	// FindByID returns the event type with the given ID, or nil when no
	// record matches. Absence is not an error.
	FindByID(ctx context.Context, id string) (*EventType, error)

	// DeleteByID removes the record with the given ID. Deleting a
	// non-existent ID is not an error.
	DeleteByID(ctx context.Context, id string) error

	// FindAll returns one page of event types, ordered by the request's
	// sort or by createdAt descending when none is given.
	FindAll(ctx context.Context, req PageRequest) ([]EventType, error)

	// Count returns the total number of event types.
	Count(ctx context.Context) (int64, error)

	// Search returns one page of event types whose name or description
	// matches the query under the store's text index, ordered by
	// relevance score descending unless the request gives a sort.
	Search(ctx context.Context, query string, req PageRequest) ([]EventType, error)

	// CountByQuery returns the total number of event types matching the
	// query, independent of any pagination bounds.
	CountByQuery(ctx context.Context, query string) (int64, error)
}
