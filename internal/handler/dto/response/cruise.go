package response

import (
	"log/slog"
	"time"

	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CruiseResponse struct {
	ID            uuid.UUID                `json:"id"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	DepartureDate time.Time                `json:"departure_date"`
	Destinations  []queries.DestinationRef `json:"destinations"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

type CruiseDetailResponse struct {
	CruiseResponse
	ReviewCount   int                       `json:"review_count"`
	AverageRating *float64                  `json:"average_rating"`
	Reviews       []*ReviewListItemResponse `json:"reviews"`
}

func FromCruiseView(v *queries.CruiseView) *CruiseResponse {
	var resp CruiseResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map cruise view", "error", err.Error())
	}
	return &resp
}

func FromCruiseList(views []*queries.CruiseView) []*CruiseResponse {
	res := make([]*CruiseResponse, len(views))
	for i, v := range views {
		res[i] = FromCruiseView(v)
	}
	return res
}

func FromCruiseDetail(v *queries.CruiseDetailView) *CruiseDetailResponse {
	return &CruiseDetailResponse{
		CruiseResponse: *FromCruiseView(&v.CruiseView),
		ReviewCount:    v.ReviewCount,
		AverageRating:  v.AverageRating,
		Reviews:        FromReviewList(v.Reviews),
	}
}
