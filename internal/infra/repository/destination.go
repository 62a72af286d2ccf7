package repository

import (
	"context"

	"relecloud-api/internal/domain/destination"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type DestinationRepository struct{}

func NewDestinationRepository() shared.DestinationRepository {
	return &DestinationRepository{}
}

func (r *DestinationRepository) Create(ctx context.Context, tx db.DBTX, d *destination.Destination) (uuid.UUID, error) {
	const query = `
		INSERT INTO destinations (id, name, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		d.ID(), d.Name(), d.Description(), d.ImageURL(), d.CreatedAt(), d.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create destination", err)
	}
	return id, nil
}

func (r *DestinationRepository) Update(ctx context.Context, tx db.DBTX, d *destination.Destination) error {
	const query = `
		UPDATE destinations
		SET name = $2, description = $3, image_url = $4, updated_at = $5
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, d.ID(), d.Name(), d.Description(), d.ImageURL(), d.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update destination", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("destination not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DestinationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete destination", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("destination not found", nil, infra.KindNotFound)
	}
	return nil
}
