package repository

import (
	"context"

	"relecloud-api/internal/domain/review"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, destination_id, author_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rev.ID(), rev.DestinationID(), rev.AuthorID(), rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
