package inforequest

import (
	"errors"
	"strings"
	"time"

	"relecloud-api/internal/domain/user"

	"github.com/google/uuid"
)

const (
	MaxNameLength  = 50
	MaxNotesLength = 2000
)

var (
	ErrInvalidEmail = errors.New("valid email is required")
	ErrNameTooLong  = errors.New("name exceeds maximum length")
	ErrNotesTooLong = errors.New("notes exceed maximum length")
)

// InfoRequest is a visitor's request for more information about a cruise.
// CruiseID may be nil for general enquiries; a nil cruise forms its own
// deduplication key, never matching a cruise-specific request.
type InfoRequest struct {
	id        uuid.UUID
	name      *string
	email     user.Email
	notes     *string
	cruiseID  *uuid.UUID
	createdAt time.Time
}

func NewInfoRequest(id uuid.UUID, name *string, email string, notes *string, cruiseID *uuid.UUID, now time.Time) (*InfoRequest, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	name = trimmed(name)
	if name != nil && len(*name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	notes = trimmed(notes)
	if notes != nil && len(*notes) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &InfoRequest{
		id:        id,
		name:      name,
		email:     emailVO,
		notes:     notes,
		cruiseID:  cruiseID,
		createdAt: now,
	}, nil
}

func (r *InfoRequest) ID() uuid.UUID        { return r.id }
func (r *InfoRequest) Name() *string        { return r.name }
func (r *InfoRequest) Email() user.Email    { return r.email }
func (r *InfoRequest) Notes() *string       { return r.notes }
func (r *InfoRequest) CruiseID() *uuid.UUID { return r.cruiseID }
func (r *InfoRequest) CreatedAt() time.Time { return r.createdAt }

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil
	}
	return &t
}
