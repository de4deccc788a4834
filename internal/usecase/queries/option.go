package queries

import "context"

type OptionReadStore interface {
	ListActive(ctx context.Context) ([]*OptionView, error)
}

type OptionQueries interface {
	ListActive(ctx context.Context) ([]*OptionView, error)
}

type optionQueriesImpl struct {
	store OptionReadStore
}

func NewOptionQueries(store OptionReadStore) OptionQueries {
	return &optionQueriesImpl{store: store}
}

// ListActive returns active options ordered by sort order.
func (q *optionQueriesImpl) ListActive(ctx context.Context) ([]*OptionView, error) {
	return q.store.ListActive(ctx)
}
