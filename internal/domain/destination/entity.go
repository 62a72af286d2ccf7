package destination

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 50
	MaxDescriptionLength = 2000
)

var (
	ErrEmptyName          = errors.New("destination name cannot be empty")
	ErrNameTooLong        = errors.New("destination name exceeds maximum length")
	ErrEmptyDescription   = errors.New("destination description cannot be empty")
	ErrDescriptionTooLong = errors.New("destination description exceeds maximum length")
)

// Destination is an admin-managed catalog entity. Name uniqueness is enforced
// by the storage layer.
type Destination struct {
	id          uuid.UUID
	name        string
	description string
	imageURL    *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDestination(id uuid.UUID, name, description string, imageURL *string, now time.Time) (*Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Destination{
		id:          id,
		name:        name,
		description: description,
		imageURL:    imageURL,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (d *Destination) ID() uuid.UUID        { return d.id }
func (d *Destination) Name() string         { return d.name }
func (d *Destination) Description() string  { return d.description }
func (d *Destination) ImageURL() *string    { return d.imageURL }
func (d *Destination) CreatedAt() time.Time { return d.createdAt }
func (d *Destination) UpdatedAt() time.Time { return d.updatedAt }
