package readstore

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type DestinationReadStore struct {
	dbtx db.DBTX
}

func NewDestinationReadStore(dbtx db.DBTX) *DestinationReadStore {
	return &DestinationReadStore{dbtx: dbtx}
}

const destinationWithStatsColumns = `
	d.id, d.name, d.description, d.image_url,
	COUNT(r.id)::int AS review_count,
	AVG(r.rating)::float8 AS average_rating,
	d.created_at, d.updated_at`

func (s *DestinationReadStore) FindAllWithStats(ctx context.Context) ([]*queries.DestinationView, error) {
	const query = `
		SELECT ` + destinationWithStatsColumns + `
		FROM destinations d
		LEFT JOIN reviews r ON r.destination_id = d.id
		GROUP BY d.id`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list destinations", err)
	}
	defer rows.Close()

	var views []*queries.DestinationView
	for rows.Next() {
		v, err := scanDestinationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan destination", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read destinations", err)
	}
	return views, nil
}

func (s *DestinationReadStore) FindByIDWithStats(ctx context.Context, id uuid.UUID) (*queries.DestinationView, error) {
	const query = `
		SELECT ` + destinationWithStatsColumns + `
		FROM destinations d
		LEFT JOIN reviews r ON r.destination_id = d.id
		WHERE d.id = $1
		GROUP BY d.id`

	v, err := scanDestinationView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find destination", err)
	}
	return v, nil
}

func (s *DestinationReadStore) FindRecentReviews(ctx context.Context, destinationID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.email, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := s.dbtx.Query(ctx, query, destinationID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list destination reviews", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

func (s *DestinationReadStore) HasPurchase(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM purchases
			WHERE user_id = $1 AND destination_id = $2
		)`

	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, userID, destinationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check purchase", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestinationView(row rowScanner) (*queries.DestinationView, error) {
	var v queries.DestinationView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.ImageURL,
		&v.ReviewCount, &v.AverageRating,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
