package queries

import (
	"context"
)

type InfoRequestReadStore interface {
	FindRecent(ctx context.Context, limit int32) ([]*InfoRequestView, error)
}

// InfoRequestQueries backs the admin listing of submitted enquiries.
type InfoRequestQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*InfoRequestView, error)
}

type infoRequestQueriesImpl struct {
	readStore InfoRequestReadStore
}

func NewInfoRequestQueries(readStore InfoRequestReadStore) InfoRequestQueries {
	return &infoRequestQueriesImpl{readStore: readStore}
}

func (q *infoRequestQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*InfoRequestView, error) {
	return q.readStore.FindRecent(ctx, int32(ValidateLimit(limit)))
}
