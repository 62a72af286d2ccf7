package response

import (
	"log/slog"
	"time"

	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DestinationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"image_url,omitempty"`
	ReviewCount   int       `json:"review_count"`
	AverageRating *float64  `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type DestinationDetailResponse struct {
	DestinationResponse
	Purchased bool                      `json:"purchased"`
	Reviews   []*ReviewListItemResponse `json:"reviews"`
}

func FromDestinationView(v *queries.DestinationView) *DestinationResponse {
	var resp DestinationResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map destination view", "error", err.Error())
	}
	return &resp
}

func FromDestinationList(views []*queries.DestinationView) []*DestinationResponse {
	res := make([]*DestinationResponse, len(views))
	for i, v := range views {
		res[i] = FromDestinationView(v)
	}
	return res
}

func FromDestinationDetail(v *queries.DestinationDetailView) *DestinationDetailResponse {
	return &DestinationDetailResponse{
		DestinationResponse: *FromDestinationView(&v.DestinationView),
		Purchased:           v.Purchased,
		Reviews:             FromReviewList(v.Reviews),
	}
}
