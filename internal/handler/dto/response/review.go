package response

import (
	"relecloud-api/internal/usecase/queries"
)

type ReviewResponse struct {
	ID              string `json:"id"`
	DestinationID   string `json:"destination_id"`
	DestinationName string `json:"destination_name"`
	AuthorID        string `json:"author_id"`
	AuthorEmail     string `json:"author_email"`
	Rating          int    `json:"rating"`
	Comment         string `json:"comment"`
	CreatedAt       int64  `json:"created_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:              v.ID.String(),
		DestinationID:   v.DestinationID.String(),
		DestinationName: v.DestinationName,
		AuthorID:        v.AuthorID.String(),
		AuthorEmail:     v.AuthorEmail,
		Rating:          v.Rating,
		Comment:         v.Comment,
		CreatedAt:       v.CreatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID          string `json:"id"`
	AuthorEmail string `json:"author_email"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	CreatedAt   int64  `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:          it.ID.String(),
			AuthorEmail: it.AuthorEmail,
			Rating:      it.Rating,
			Comment:     it.Comment,
			CreatedAt:   it.CreatedAt.Unix(),
		}
	}
	return res
}
