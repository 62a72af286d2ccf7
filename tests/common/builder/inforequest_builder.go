//go:build unit || e2e

package builder

import (
	"time"

	dominforeq "relecloud-api/internal/domain/inforequest"
	reqdto "relecloud-api/internal/handler/dto/request"
	"relecloud-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type InfoRequestBuilder struct {
	Name      *string
	Email     string
	Notes     *string
	CruiseID  *uuid.UUID
	CreatedAt time.Time
}

func NewInfoRequestBuilder() *InfoRequestBuilder {
	name := "Alex Traveler"
	notes := "Interested in the northern lights itinerary."
	cruiseID := uuid.New()
	return &InfoRequestBuilder{
		Name:      &name,
		Email:     "traveler@example.com",
		Notes:     &notes,
		CruiseID:  &cruiseID,
		CreatedAt: time.Now(),
	}
}

func (b *InfoRequestBuilder) With(mutate func(*InfoRequestBuilder)) *InfoRequestBuilder {
	mutate(b)
	return b
}

func (b *InfoRequestBuilder) BuildDomain() (*dominforeq.InfoRequest, error) {
	return dominforeq.NewInfoRequest(uuid.Nil, b.Name, b.Email, b.Notes, b.CruiseID, b.CreatedAt)
}

func (b *InfoRequestBuilder) BuildCommand() commands.SubmitInfoRequestRequest {
	return commands.SubmitInfoRequestRequest{
		Name:     b.Name,
		Email:    b.Email,
		Notes:    b.Notes,
		CruiseID: b.CruiseID,
	}
}

func (b *InfoRequestBuilder) BuildSubmitRequestDTO() reqdto.SubmitInfoRequestRequest {
	return reqdto.SubmitInfoRequestRequest{
		Name:     b.Name,
		Email:    b.Email,
		Notes:    b.Notes,
		CruiseID: b.CruiseID,
	}
}

// Fluent builder methods
func (b *InfoRequestBuilder) WithEmail(email string) *InfoRequestBuilder {
	b.Email = email
	return b
}

func (b *InfoRequestBuilder) WithName(name *string) *InfoRequestBuilder {
	b.Name = name
	return b
}

func (b *InfoRequestBuilder) WithNotes(notes *string) *InfoRequestBuilder {
	b.Notes = notes
	return b
}

func (b *InfoRequestBuilder) WithCruiseID(id *uuid.UUID) *InfoRequestBuilder {
	b.CruiseID = id
	return b
}

func (b *InfoRequestBuilder) AsGeneralEnquiry() *InfoRequestBuilder {
	b.CruiseID = nil
	return b
}
