package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Catalog errors
	ErrDestinationNotFound = errors.New("destination not found")
	ErrCruiseNotFound      = errors.New("cruise not found")
	ErrDuplicateName       = errors.New("name already in use")
	ErrCruiseHasRequests   = errors.New("cruise referenced by info requests")

	// Review errors
	ErrReviewNotFound   = errors.New("review not found")
	ErrReviewNotAllowed = errors.New("destination not purchased")
	ErrReviewNotOwned   = errors.New("review not owned by user")

	// Info request errors
	ErrDuplicateInfoRequest = errors.New("info request already submitted for this cruise")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
