package review

import "errors"

var (
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong     = errors.New("comment exceeds maximum length")
	ErrMissingAuthor      = errors.New("review author is required")
	ErrMissingDestination = errors.New("review destination is required")
)
