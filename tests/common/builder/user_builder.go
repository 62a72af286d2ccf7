//go:build unit || e2e

package builder

import (
	reqdto "relecloud-api/internal/handler/dto/request"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "member@example.com",
		Password: "password123",
		Role:     "member",
		IsActive: true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithInactive() *UserBuilder {
	b.IsActive = false
	return b
}
