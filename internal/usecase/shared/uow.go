package shared

import (
	"context"

	"relecloud-api/internal/domain/cruise"
	"relecloud-api/internal/domain/destination"
	"relecloud-api/internal/domain/inforequest"
	"relecloud-api/internal/domain/review"
	"relecloud-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Destinations() DestinationRepository
	Cruises() CruiseRepository
	Reviews() ReviewRepository
	InfoRequests() InfoRequestRepository
	Purchases() PurchaseRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side lookups commands validate against.
type CommandReads interface {
	DestinationByID(ctx context.Context, id uuid.UUID) (*DestinationSnapshot, error)
	CruiseByID(ctx context.Context, id uuid.UUID) (*CruiseSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	// HasPurchase reports whether the user holds a purchase of the destination.
	HasPurchase(ctx context.Context, userID, destinationID uuid.UUID) (bool, error)
	// InfoRequestExists checks the (email, cruise) pair; a nil cruise only
	// matches other nil-cruise requests from the same email.
	InfoRequestExists(ctx context.Context, email string, cruiseID *uuid.UUID) (bool, error)
}

type DestinationRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *destination.Destination) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, d *destination.Destination) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CruiseRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *cruise.Cruise) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *cruise.Cruise) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type InfoRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *inforequest.InfoRequest) (uuid.UUID, error)
}

type PurchaseRepository interface {
	// Create is idempotent: a second buy of an owned destination inserts
	// nothing and returns created=false.
	Create(ctx context.Context, tx db.DBTX, userID, destinationID uuid.UUID) (created bool, err error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, id uuid.UUID, email, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
