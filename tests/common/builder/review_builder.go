//go:build unit || e2e

package builder

import (
	"time"

	domreview "relecloud-api/internal/domain/review"
	reqdto "relecloud-api/internal/handler/dto/request"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	DestinationID   uuid.UUID
	DestinationName string
	AuthorID        uuid.UUID
	AuthorEmail     string
	Rating          int
	Comment         string
	CreatedAt       time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		DestinationID:   uuid.New(),
		DestinationName: "Lisbon",
		AuthorID:        uuid.New(),
		AuthorEmail:     "reviewer@example.com",
		Rating:          5,
		Comment:         "Wonderful trip!",
		CreatedAt:       time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.DestinationID, r.AuthorID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:              uuid.New(),
		DestinationID:   r.DestinationID,
		DestinationName: r.DestinationName,
		AuthorID:        r.AuthorID,
		AuthorEmail:     r.AuthorEmail,
		Rating:          r.Rating,
		Comment:         r.Comment,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:          uuid.New(),
		AuthorEmail: r.AuthorEmail,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:            uuid.New(),
		DestinationID: r.DestinationID,
		AuthorID:      r.AuthorID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithDestinationID(id uuid.UUID) *ReviewBuilder {
	r.DestinationID = id
	return r
}

func (r *ReviewBuilder) WithAuthorID(id uuid.UUID) *ReviewBuilder {
	r.AuthorID = id
	return r
}

func (r *ReviewBuilder) WithAuthorEmail(email string) *ReviewBuilder {
	r.AuthorEmail = email
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}
