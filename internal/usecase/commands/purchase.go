package commands

import (
	"context"

	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BuyDestinationResult struct {
	// AlreadyOwned is true when the buy was a no-op replay.
	AlreadyOwned bool
}

type PurchaseCommands interface {
	// BuyDestination records ownership of a destination. Buying an owned
	// destination is a no-op, enforced by the unique (user, destination) key.
	BuyDestination(ctx context.Context, userID, destinationID uuid.UUID) (*BuyDestinationResult, error)
}

type purchaseCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPurchaseCommands(uow shared.UnitOfWork) PurchaseCommands {
	return &purchaseCommandsImpl{uow: uow}
}

func (uc *purchaseCommandsImpl) BuyDestination(ctx context.Context, userID, destinationID uuid.UUID) (*BuyDestinationResult, error) {
	var created bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DestinationByID(ctx, destinationID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDestinationNotFound
			}
			return derr
		}

		var derr error
		created, derr = tx.Purchases().Create(ctx, tx.DB(), userID, destinationID)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &BuyDestinationResult{AlreadyOwned: !created}, nil
}
