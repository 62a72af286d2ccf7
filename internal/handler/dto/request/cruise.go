package request

import (
	"time"

	"relecloud-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpsertCruiseRequest struct {
	Name           string      `json:"name" binding:"required,max=50"`
	Description    string      `json:"description" binding:"omitempty,max=2000"`
	DepartureDate  time.Time   `json:"departure_date" binding:"required"`
	DestinationIDs []uuid.UUID `json:"destination_ids"`
}

func (r *UpsertCruiseRequest) ToCommand() commands.UpsertCruiseRequest {
	return commands.UpsertCruiseRequest{
		Name:           r.Name,
		Description:    r.Description,
		DepartureDate:  r.DepartureDate,
		DestinationIDs: r.DestinationIDs,
	}
}
