package repository

import (
	"context"

	"relecloud-api/internal/domain/cruise"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CruiseRepository struct{}

func NewCruiseRepository() shared.CruiseRepository {
	return &CruiseRepository{}
}

func (r *CruiseRepository) Create(ctx context.Context, tx db.DBTX, c *cruise.Cruise) (uuid.UUID, error) {
	const query = `
		INSERT INTO cruises (id, name, description, departure_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.Name(), c.Description(), c.DepartureDate(), c.CreatedAt(), c.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create cruise", err)
	}

	if err := r.replaceDestinations(ctx, tx, id, c.DestinationIDs()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *CruiseRepository) Update(ctx context.Context, tx db.DBTX, c *cruise.Cruise) error {
	const query = `
		UPDATE cruises
		SET name = $2, description = $3, departure_date = $4, updated_at = $5
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Description(), c.DepartureDate(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update cruise", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cruise not found", nil, infra.KindNotFound)
	}

	return r.replaceDestinations(ctx, tx, c.ID(), c.DestinationIDs())
}

func (r *CruiseRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM cruises WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cruise", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cruise not found", nil, infra.KindNotFound)
	}
	return nil
}

// replaceDestinations rewrites the itinerary join rows in full. Ordering is
// preserved through the position column.
func (r *CruiseRepository) replaceDestinations(ctx context.Context, tx db.DBTX, cruiseID uuid.UUID, destinationIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM cruise_destinations WHERE cruise_id = $1`, cruiseID); err != nil {
		return infra.WrapRepoErr("failed to clear cruise destinations", err)
	}

	const insert = `
		INSERT INTO cruise_destinations (cruise_id, destination_id, position)
		VALUES ($1, $2, $3)`

	for i, destID := range destinationIDs {
		if _, err := tx.Exec(ctx, insert, cruiseID, destID, i); err != nil {
			return infra.WrapRepoErr("failed to link cruise destination", err)
		}
	}
	return nil
}
