package readstore

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	if err := s.dbtx.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive); err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var v queries.AuthorizedUserView
	var hash string
	if err := s.dbtx.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &hash); err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
