//go:build unit || e2e

package builder

import (
	"time"

	domcruise "relecloud-api/internal/domain/cruise"
	reqdto "relecloud-api/internal/handler/dto/request"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CruiseBuilder struct {
	ID             uuid.UUID
	Name           string
	Description    string
	DepartureDate  time.Time
	DestinationIDs []uuid.UUID
	CreatedAt      time.Time
}

func NewCruiseBuilder() *CruiseBuilder {
	return &CruiseBuilder{
		ID:             uuid.New(),
		Name:           "Fjords of Norway",
		Description:    "Seven nights along the Norwegian coast.",
		DepartureDate:  time.Now().AddDate(0, 2, 0),
		DestinationIDs: []uuid.UUID{uuid.New(), uuid.New()},
		CreatedAt:      time.Now(),
	}
}

func (b *CruiseBuilder) With(mutate func(*CruiseBuilder)) *CruiseBuilder {
	mutate(b)
	return b
}

func (b *CruiseBuilder) BuildDomain() (*domcruise.Cruise, error) {
	return domcruise.NewCruise(b.ID, b.Name, b.Description, b.DepartureDate, b.DestinationIDs, b.CreatedAt)
}

func (b *CruiseBuilder) BuildUpsertRequestDTO() reqdto.UpsertCruiseRequest {
	return reqdto.UpsertCruiseRequest{
		Name:           b.Name,
		Description:    b.Description,
		DepartureDate:  b.DepartureDate,
		DestinationIDs: b.DestinationIDs,
	}
}

func (b *CruiseBuilder) BuildCommand() commands.UpsertCruiseRequest {
	return commands.UpsertCruiseRequest{
		Name:           b.Name,
		Description:    b.Description,
		DepartureDate:  b.DepartureDate,
		DestinationIDs: b.DestinationIDs,
	}
}

func (b *CruiseBuilder) BuildView() *queries.CruiseView {
	refs := make([]queries.DestinationRef, len(b.DestinationIDs))
	for i, id := range b.DestinationIDs {
		refs[i] = queries.DestinationRef{ID: id, Name: "Port " + id.String()[:8]}
	}
	return &queries.CruiseView{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		DepartureDate: b.DepartureDate,
		Destinations:  refs,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *CruiseBuilder) WithName(name string) *CruiseBuilder {
	b.Name = name
	return b
}

func (b *CruiseBuilder) WithDescription(description string) *CruiseBuilder {
	b.Description = description
	return b
}

func (b *CruiseBuilder) WithDepartureDate(d time.Time) *CruiseBuilder {
	b.DepartureDate = d
	return b
}

func (b *CruiseBuilder) WithDestinationIDs(ids ...uuid.UUID) *CruiseBuilder {
	b.DestinationIDs = ids
	return b
}
