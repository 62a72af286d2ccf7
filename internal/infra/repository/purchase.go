package repository

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PurchaseRepository struct{}

func NewPurchaseRepository() shared.PurchaseRepository {
	return &PurchaseRepository{}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx db.DBTX, userID, destinationID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO purchases (id, user_id, destination_id, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, destination_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query, uuid.New(), userID, destinationID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create purchase", err)
	}
	return tag.RowsAffected() > 0, nil
}
