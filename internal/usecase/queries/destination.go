package queries

import (
	"context"

	"relecloud-api/internal/domain/popularity"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const detailReviewLimit = 10

type DestinationReadStore interface {
	// FindAllWithStats returns every destination with its review count and raw
	// (unrounded) mean rating, nil mean when uncounted. Order is unspecified;
	// ranking is applied here.
	FindAllWithStats(ctx context.Context) ([]*DestinationView, error)
	FindByIDWithStats(ctx context.Context, id uuid.UUID) (*DestinationView, error)
	FindRecentReviews(ctx context.Context, destinationID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	HasPurchase(ctx context.Context, userID, destinationID uuid.UUID) (bool, error)
}

type DestinationQueries interface {
	// ListByPopularity recomputes the full ranking on every call.
	ListByPopularity(ctx context.Context) ([]*DestinationView, error)
	// GetDetail includes the purchased flag when viewerID is non-nil.
	GetDetail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*DestinationDetailView, error)
}

type destinationQueriesImpl struct {
	readStore DestinationReadStore
}

func NewDestinationQueries(readStore DestinationReadStore) DestinationQueries {
	return &destinationQueriesImpl{readStore: readStore}
}

func (q *destinationQueriesImpl) ListByPopularity(ctx context.Context) ([]*DestinationView, error) {
	views, err := q.readStore.FindAllWithStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]popularity.DestinationStats, len(views))
	byID := make(map[uuid.UUID]*DestinationView, len(views))
	for i, v := range views {
		stats[i] = popularity.DestinationStats{
			DestinationID: v.ID,
			ReviewCount:   v.ReviewCount,
			MeanRating:    v.AverageRating,
		}
		byID[v.ID] = v
	}

	ranked := popularity.Rank(stats)

	ordered := make([]*DestinationView, len(ranked))
	for i, s := range ranked {
		view := byID[s.DestinationID]
		roundForDisplay(view)
		ordered[i] = view
	}
	return ordered, nil
}

func (q *destinationQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*DestinationDetailView, error) {
	view, err := q.readStore.FindByIDWithStats(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDestinationNotFound
		}
		return nil, err
	}
	roundForDisplay(view)

	reviews, err := q.readStore.FindRecentReviews(ctx, id, detailReviewLimit)
	if err != nil {
		return nil, err
	}

	purchased := false
	if viewerID != nil {
		purchased, err = q.readStore.HasPurchase(ctx, *viewerID, id)
		if err != nil {
			return nil, err
		}
	}

	return &DestinationDetailView{
		DestinationView: *view,
		Purchased:       purchased,
		Reviews:         reviews,
	}, nil
}

func roundForDisplay(v *DestinationView) {
	if v.AverageRating != nil {
		rounded := popularity.Round1(*v.AverageRating)
		v.AverageRating = &rounded
	}
}
