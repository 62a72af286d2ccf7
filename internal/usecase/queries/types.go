package queries

import (
	"time"

	"github.com/google/uuid"
)

// Role names as stored on the user record
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// DestinationView is a list-page read model. AverageRating is nil when the
// destination has no reviews; it is rounded to one decimal for display.
type DestinationView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"image_url,omitempty"`
	ReviewCount   int       `json:"review_count"`
	AverageRating *float64  `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DestinationDetailView augments the list view with viewer-specific data.
type DestinationDetailView struct {
	DestinationView
	// Purchased is only meaningful for authenticated viewers; false otherwise.
	Purchased bool              `json:"purchased"`
	Reviews   []*ReviewListItem `json:"reviews"`
}

type DestinationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CruiseView struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	DepartureDate time.Time        `json:"departure_date"`
	Destinations  []DestinationRef `json:"destinations"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CruiseDetailView aggregates reviews across every destination the cruise
// visits, mirroring the cruise detail page.
type CruiseDetailView struct {
	CruiseView
	ReviewCount   int               `json:"review_count"`
	AverageRating *float64          `json:"average_rating"`
	Reviews       []*ReviewListItem `json:"reviews"`
}

type ReviewView struct {
	ID              uuid.UUID `json:"id"`
	DestinationID   uuid.UUID `json:"destination_id"`
	DestinationName string    `json:"destination_name"`
	AuthorID        uuid.UUID `json:"author_id"`
	AuthorEmail     string    `json:"author_email"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewListItem struct {
	ID          uuid.UUID `json:"id"`
	AuthorEmail string    `json:"author_email"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type InfoRequestView struct {
	ID         uuid.UUID  `json:"id"`
	Name       *string    `json:"name,omitempty"`
	Email      string     `json:"email"`
	Notes      *string    `json:"notes,omitempty"`
	CruiseID   *uuid.UUID `json:"cruise_id,omitempty"`
	CruiseName *string    `json:"cruise_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
