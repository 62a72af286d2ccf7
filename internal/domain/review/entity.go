package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is immutable after creation: ratings are only ever added or deleted,
// never edited, so aggregate recomputation stays append/delete driven.
type Review struct {
	id            uuid.UUID
	destinationID uuid.UUID
	authorID      uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
}

func NewReview(id, destinationID, authorID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if destinationID == uuid.Nil {
		return nil, ErrMissingDestination
	}
	if authorID == uuid.Nil {
		return nil, ErrMissingAuthor
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		destinationID: destinationID,
		authorID:      authorID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}, nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) DestinationID() uuid.UUID { return r.destinationID }
func (r *Review) AuthorID() uuid.UUID      { return r.authorID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
