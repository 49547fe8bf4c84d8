package eventtype

import (
	"context"

	"go.supervision.dev/internal/common/repository"
)

const collectionName = "event_types"

// instrumentedRepository wraps a Repository with metrics and logging
type instrumentedRepository struct {
	inner Repository
}

// newInstrumentedRepository creates an instrumented wrapper around a Repository
func newInstrumentedRepository(inner Repository) Repository {
	return &instrumentedRepository{inner: inner}
}

func (r *instrumentedRepository) Save(ctx context.Context, et EventType) (EventType, error) {
	return repository.Instrument(ctx, collectionName, "Save", func() (EventType, error) {
		return r.inner.Save(ctx, et)
	})
}

func (r *instrumentedRepository) FindByID(ctx context.Context, id string) (*EventType, error) {
	return repository.Instrument(ctx, collectionName, "FindByID", func() (*EventType, error) {
		return r.inner.FindByID(ctx, id)
	})
}

func (r *instrumentedRepository) DeleteByID(ctx context.Context, id string) error {
	return repository.InstrumentVoid(ctx, collectionName, "DeleteByID", func() error {
		return r.inner.DeleteByID(ctx, id)
	})
}

func (r *instrumentedRepository) FindAll(ctx context.Context, req PageRequest) ([]EventType, error) {
	return repository.Instrument(ctx, collectionName, "FindAll", func() ([]EventType, error) {
		return r.inner.FindAll(ctx, req)
	})
}

func (r *instrumentedRepository) Count(ctx context.Context) (int64, error) {
	return repository.Instrument(ctx, collectionName, "Count", func() (int64, error) {
		return r.inner.Count(ctx)
	})
}

func (r *instrumentedRepository) Search(ctx context.Context, query string, req PageRequest) ([]EventType, error) {
	return repository.Instrument(ctx, collectionName, "Search", func() ([]EventType, error) {
		return r.inner.Search(ctx, query, req)
	})
}

func (r *instrumentedRepository) CountByQuery(ctx context.Context, query string) (int64, error) {
	return repository.Instrument(ctx, collectionName, "CountByQuery", func() (int64, error) {
		return r.inner.CountByQuery(ctx, query)
	})
}
