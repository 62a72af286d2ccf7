package commands

import (
	"context"

	domreview "relecloud-api/internal/domain/review"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	// Create persists a review for the destination on behalf of the author.
	// The author must hold a purchase of the destination; entitlement is a
	// direct destination purchase, not a cruise booking.
	Create(ctx context.Context, destinationID uuid.UUID, req CreateReviewRequest, authorID uuid.UUID) (*CreateReviewResult, error)
	// Delete removes a review; only its author or an admin may do so.
	Delete(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, destinationID uuid.UUID, req CreateReviewRequest, authorID uuid.UUID) (*CreateReviewResult, error) {
	// Validate before touching storage so a bad rating never opens a tx.
	rev, err := domreview.NewReview(uuid.Nil, destinationID, authorID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DestinationByID(ctx, destinationID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDestinationNotFound
			}
			return derr
		}

		owned, derr := tx.Reads().HasPurchase(ctx, authorID, destinationID)
		if derr != nil {
			return derr
		}
		if !owned {
			return errs.ErrReviewNotAllowed
		}

		createdID, derr = tx.Reviews().Create(ctx, tx.DB(), rev)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrReviewNotFound
			}
			return derr
		}
		if actorRole != queries.RoleAdmin && snap.AuthorID != actorID {
			return errs.ErrReviewNotOwned
		}
		return tx.Reviews().Delete(ctx, tx.DB(), reviewID)
	})
}
