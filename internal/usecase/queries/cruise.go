package queries

import (
	"context"

	"relecloud-api/internal/domain/popularity"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CruiseReadStore interface {
	FindAll(ctx context.Context) ([]*CruiseView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CruiseView, error)
	// FindVisitedDestinationReviews returns reviews across every destination
	// the cruise visits, newest first.
	FindVisitedDestinationReviews(ctx context.Context, cruiseID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	// VisitedDestinationRatings returns the raw rating values behind those
	// reviews for aggregate computation.
	VisitedDestinationRatings(ctx context.Context, cruiseID uuid.UUID) ([]int, error)
}

type CruiseQueries interface {
	List(ctx context.Context) ([]*CruiseView, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*CruiseDetailView, error)
}

type cruiseQueriesImpl struct {
	readStore CruiseReadStore
}

func NewCruiseQueries(readStore CruiseReadStore) CruiseQueries {
	return &cruiseQueriesImpl{readStore: readStore}
}

func (q *cruiseQueriesImpl) List(ctx context.Context) ([]*CruiseView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *cruiseQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*CruiseDetailView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCruiseNotFound
		}
		return nil, err
	}

	reviews, err := q.readStore.FindVisitedDestinationReviews(ctx, id, detailReviewLimit)
	if err != nil {
		return nil, err
	}

	ratings, err := q.readStore.VisitedDestinationRatings(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := popularity.Aggregate(id, ratings)
	detail := &CruiseDetailView{
		CruiseView:  *view,
		ReviewCount: stats.ReviewCount,
		Reviews:     reviews,
	}
	if display, ok := stats.DisplayRating(); ok {
		detail.AverageRating = &display
	}
	return detail, nil
}
