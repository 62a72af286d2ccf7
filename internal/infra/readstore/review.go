package readstore

import (
	"context"
	"time"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	dbtx db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{dbtx: dbtx}
}

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const query = `
		SELECT r.id, r.destination_id, d.name, r.author_id, u.email,
		       r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN destinations d ON d.id = r.destination_id
		JOIN users u ON u.id = r.author_id
		WHERE r.id = $1`

	var v queries.ReviewView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.DestinationID, &v.DestinationName, &v.AuthorID, &v.AuthorEmail,
		&v.Rating, &v.Comment, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return &v, nil
}

func (s *ReviewReadStore) FindByDestinationFirstPage(ctx context.Context, destinationID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.email, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := s.dbtx.Query(ctx, query, destinationID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

// FindByDestinationKeyset pages with a (created_at, id) keyset so concurrent
// inserts never shift already-served pages.
func (s *ReviewReadStore) FindByDestinationKeyset(ctx context.Context, destinationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.email, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.destination_id = $1
		  AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	rows, err := s.dbtx.Query(ctx, query, destinationID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

func collectReviewListItems(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	var items []*queries.ReviewListItem
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.AuthorEmail, &it.Rating, &it.Comment, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reviews", err)
	}
	return items, nil
}
