package cruise

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 50
	MaxDescriptionLength = 2000

	// Applied when the admin form leaves the description blank.
	DefaultDescription = "No description available."
)

var (
	ErrEmptyName            = errors.New("cruise name cannot be empty")
	ErrNameTooLong          = errors.New("cruise name exceeds maximum length")
	ErrDescriptionTooLong   = errors.New("cruise description exceeds maximum length")
	ErrMissingDepartureDate = errors.New("cruise departure date is required")
)

// Cruise is a bookable itinerary visiting zero or more destinations.
type Cruise struct {
	id             uuid.UUID
	name           string
	description    string
	departureDate  time.Time
	destinationIDs []uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCruise(id uuid.UUID, name, description string, departureDate time.Time, destinationIDs []uuid.UUID, now time.Time) (*Cruise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultDescription
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if departureDate.IsZero() {
		return nil, ErrMissingDepartureDate
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Cruise{
		id:             id,
		name:           name,
		description:    description,
		departureDate:  departureDate,
		destinationIDs: dedupe(destinationIDs),
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (c *Cruise) ID() uuid.UUID                { return c.id }
func (c *Cruise) Name() string                 { return c.name }
func (c *Cruise) Description() string          { return c.description }
func (c *Cruise) DepartureDate() time.Time     { return c.departureDate }
func (c *Cruise) DestinationIDs() []uuid.UUID  { return c.destinationIDs }
func (c *Cruise) CreatedAt() time.Time         { return c.createdAt }
func (c *Cruise) UpdatedAt() time.Time         { return c.updatedAt }
func (c *Cruise) Visits(destID uuid.UUID) bool {
	for _, id := range c.destinationIDs {
		if id == destID {
			return true
		}
	}
	return false
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
