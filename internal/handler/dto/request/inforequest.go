package request

import (
	"relecloud-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitInfoRequestRequest struct {
	Name     *string    `json:"name" binding:"omitempty,max=50"`
	Email    string     `json:"email" binding:"required,email"`
	Notes    *string    `json:"notes" binding:"omitempty,max=2000"`
	CruiseID *uuid.UUID `json:"cruise_id"`
}

func (r *SubmitInfoRequestRequest) ToCommand() commands.SubmitInfoRequestRequest {
	return commands.SubmitInfoRequestRequest{
		Name:     r.Name,
		Email:    r.Email,
		Notes:    r.Notes,
		CruiseID: r.CruiseID,
	}
}
