package repository

import (
	"context"

	"relecloud-api/internal/domain/inforequest"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type InfoRequestRepository struct{}

func NewInfoRequestRepository() shared.InfoRequestRepository {
	return &InfoRequestRepository{}
}

func (r *InfoRequestRepository) Create(ctx context.Context, tx db.DBTX, req *inforequest.InfoRequest) (uuid.UUID, error) {
	const query = `
		INSERT INTO info_requests (id, name, email, notes, cruise_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		req.ID(), req.Name(), req.Email().String(), req.Notes(), req.CruiseID(), req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		// The partial unique indexes surface concurrent duplicates here.
		return uuid.Nil, infra.WrapRepoErr("failed to create info request", err)
	}
	return id, nil
}
