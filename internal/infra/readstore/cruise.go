package readstore

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CruiseReadStore struct {
	dbtx db.DBTX
}

func NewCruiseReadStore(dbtx db.DBTX) *CruiseReadStore {
	return &CruiseReadStore{dbtx: dbtx}
}

func (s *CruiseReadStore) FindAll(ctx context.Context) ([]*queries.CruiseView, error) {
	const query = `
		SELECT id, name, description, departure_date, created_at, updated_at
		FROM cruises
		ORDER BY departure_date ASC, id ASC`

	rows, err := s.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cruises", err)
	}
	defer rows.Close()

	var views []*queries.CruiseView
	for rows.Next() {
		var v queries.CruiseView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.DepartureDate, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cruise", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cruises", err)
	}

	if err := s.attachDestinations(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *CruiseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CruiseView, error) {
	const query = `
		SELECT id, name, description, departure_date, created_at, updated_at
		FROM cruises
		WHERE id = $1`

	var v queries.CruiseView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Description, &v.DepartureDate, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cruise", err)
	}

	if err := s.attachDestinations(ctx, []*queries.CruiseView{&v}); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *CruiseReadStore) FindVisitedDestinationReviews(ctx context.Context, cruiseID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.email, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		JOIN cruise_destinations cd ON cd.destination_id = r.destination_id
		WHERE cd.cruise_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := s.dbtx.Query(ctx, query, cruiseID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cruise reviews", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

func (s *CruiseReadStore) VisitedDestinationRatings(ctx context.Context, cruiseID uuid.UUID) ([]int, error) {
	const query = `
		SELECT r.rating
		FROM reviews r
		JOIN cruise_destinations cd ON cd.destination_id = r.destination_id
		WHERE cd.cruise_id = $1`

	rows, err := s.dbtx.Query(ctx, query, cruiseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cruise ratings", err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var r int
		if err := rows.Scan(&r); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ratings", err)
	}
	return ratings, nil
}

// attachDestinations loads the itinerary refs for the given cruises in one
// query, ordered by their position within each cruise.
func (s *CruiseReadStore) attachDestinations(ctx context.Context, views []*queries.CruiseView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.CruiseView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		v.Destinations = []queries.DestinationRef{}
		byID[v.ID] = v
	}

	const query = `
		SELECT cd.cruise_id, d.id, d.name
		FROM cruise_destinations cd
		JOIN destinations d ON d.id = cd.destination_id
		WHERE cd.cruise_id = ANY($1)
		ORDER BY cd.cruise_id, cd.position`

	rows, err := s.dbtx.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list cruise destinations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cruiseID uuid.UUID
		var ref queries.DestinationRef
		if err := rows.Scan(&cruiseID, &ref.ID, &ref.Name); err != nil {
			return infra.WrapRepoErr("failed to scan cruise destination", err)
		}
		if v, ok := byID[cruiseID]; ok {
			v.Destinations = append(v.Destinations, ref)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read cruise destinations", err)
	}
	return nil
}
