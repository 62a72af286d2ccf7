package repository

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, id uuid.UUID, email, passwordHash, role string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, now(), now())
		RETURNING id`

	var createdID uuid.UUID
	if err := tx.QueryRow(ctx, query, id, email, passwordHash, role).Scan(&createdID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return createdID, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE users SET last_login = now() WHERE id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
