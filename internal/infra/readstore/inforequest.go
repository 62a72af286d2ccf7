package readstore

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type InfoRequestReadStore struct {
	dbtx db.DBTX
}

func NewInfoRequestReadStore(dbtx db.DBTX) *InfoRequestReadStore {
	return &InfoRequestReadStore{dbtx: dbtx}
}

func (s *InfoRequestReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.InfoRequestView, error) {
	const query = `
		SELECT ir.id, ir.name, ir.email, ir.notes, ir.cruise_id, c.name, ir.created_at
		FROM info_requests ir
		LEFT JOIN cruises c ON c.id = ir.cruise_id
		ORDER BY ir.created_at DESC, ir.id DESC
		LIMIT $1`

	rows, err := s.dbtx.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list info requests", err)
	}
	defer rows.Close()

	var views []*queries.InfoRequestView
	for rows.Next() {
		var v queries.InfoRequestView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Notes, &v.CruiseID, &v.CruiseName, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan info request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read info requests", err)
	}
	return views, nil
}

// Exists treats a nil cruise as its own key: a general enquiry only collides
// with another general enquiry from the same email.
func (s *InfoRequestReadStore) Exists(ctx context.Context, email string, cruiseID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM info_requests
			WHERE email = $1
			  AND ($2::uuid IS NULL AND cruise_id IS NULL OR cruise_id = $2)
		)`

	var exists bool
	if err := s.dbtx.QueryRow(ctx, query, email, cruiseID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check info request", err)
	}
	return exists, nil
}
