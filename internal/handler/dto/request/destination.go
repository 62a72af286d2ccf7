package request

import (
	"relecloud-api/internal/usecase/commands"
)

type UpsertDestinationRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Description string  `json:"description" binding:"required,max=2000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

func (r *UpsertDestinationRequest) ToCommand() commands.UpsertDestinationRequest {
	return commands.UpsertDestinationRequest{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}
