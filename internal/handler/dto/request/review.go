package request

import (
	"relecloud-api/internal/usecase/commands"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
