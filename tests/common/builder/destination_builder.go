//go:build unit || e2e

package builder

import (
	"time"

	domdestination "relecloud-api/internal/domain/destination"
	reqdto "relecloud-api/internal/handler/dto/request"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type DestinationBuilder struct {
	ID            uuid.UUID
	Name          string
	Description   string
	ImageURL      *string
	ReviewCount   int
	AverageRating *float64
	CreatedAt     time.Time
}

func NewDestinationBuilder() *DestinationBuilder {
	return &DestinationBuilder{
		ID:          uuid.New(),
		Name:        "Reykjavik",
		Description: "Gateway to glaciers and hot springs.",
		CreatedAt:   time.Now(),
	}
}

func (b *DestinationBuilder) With(mutate func(*DestinationBuilder)) *DestinationBuilder {
	mutate(b)
	return b
}

func (b *DestinationBuilder) BuildDomain() (*domdestination.Destination, error) {
	return domdestination.NewDestination(b.ID, b.Name, b.Description, b.ImageURL, b.CreatedAt)
}

func (b *DestinationBuilder) BuildUpsertRequestDTO() reqdto.UpsertDestinationRequest {
	return reqdto.UpsertDestinationRequest{
		Name:        b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
	}
}

func (b *DestinationBuilder) BuildView() *queries.DestinationView {
	return &queries.DestinationView{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		ImageURL:      b.ImageURL,
		ReviewCount:   b.ReviewCount,
		AverageRating: b.AverageRating,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *DestinationBuilder) BuildSnapshot() *shared.DestinationSnapshot {
	return &shared.DestinationSnapshot{
		ID:   b.ID,
		Name: b.Name,
	}
}

// Fluent builder methods
func (b *DestinationBuilder) WithID(id uuid.UUID) *DestinationBuilder {
	b.ID = id
	return b
}

func (b *DestinationBuilder) WithName(name string) *DestinationBuilder {
	b.Name = name
	return b
}

func (b *DestinationBuilder) WithDescription(description string) *DestinationBuilder {
	b.Description = description
	return b
}

func (b *DestinationBuilder) WithStats(count int, mean *float64) *DestinationBuilder {
	b.ReviewCount = count
	b.AverageRating = mean
	return b
}
