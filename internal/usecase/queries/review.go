package queries

import (
	"context"
	"time"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByDestinationFirstPage(ctx context.Context, destinationID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByDestinationKeyset(ctx context.Context, destinationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByDestination(ctx context.Context, destinationID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByDestinationFirstPage(ctx, destinationID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByDestinationKeyset(ctx, destinationID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
