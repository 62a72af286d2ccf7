package response

import (
	"time"

	"relecloud-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// InfoRequestSubmittedResponse reports the outcome of a submission. Notified
// is false when the request was stored but the sales notification failed.
type InfoRequestSubmittedResponse struct {
	ID       uuid.UUID `json:"id"`
	Notified bool      `json:"notified"`
}

type InfoRequestResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       *string    `json:"name,omitempty"`
	Email      string     `json:"email"`
	Notes      *string    `json:"notes,omitempty"`
	CruiseID   *uuid.UUID `json:"cruise_id,omitempty"`
	CruiseName *string    `json:"cruise_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromInfoRequestList(views []*queries.InfoRequestView) []*InfoRequestResponse {
	res := make([]*InfoRequestResponse, len(views))
	for i, v := range views {
		res[i] = &InfoRequestResponse{
			ID:         v.ID,
			Name:       v.Name,
			Email:      v.Email,
			Notes:      v.Notes,
			CruiseID:   v.CruiseID,
			CruiseName: v.CruiseName,
			CreatedAt:  v.CreatedAt,
		}
	}
	return res
}
