package commands

import (
	"context"

	domdestination "relecloud-api/internal/domain/destination"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertDestinationRequest struct {
	Name        string
	Description string
	ImageURL    *string
}

type CreateDestinationResult struct {
	DestinationID uuid.UUID
}

// DestinationCommands is the admin CRUD surface for the catalog.
type DestinationCommands interface {
	Create(ctx context.Context, req UpsertDestinationRequest) (*CreateDestinationResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertDestinationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDestinationCommands(uow shared.UnitOfWork, clk clock.Clock) DestinationCommands {
	return &destinationCommandsImpl{uow: uow, clock: clk}
}

func (uc *destinationCommandsImpl) Create(ctx context.Context, req UpsertDestinationRequest) (*CreateDestinationResult, error) {
	dest, err := domdestination.NewDestination(uuid.Nil, req.Name, req.Description, req.ImageURL, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		createdID, derr = tx.Destinations().Create(ctx, tx.DB(), dest)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return errs.ErrDuplicateName
		}
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateDestinationResult{DestinationID: createdID}, nil
}

func (uc *destinationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpsertDestinationRequest) error {
	dest, err := domdestination.NewDestination(id, req.Name, req.Description, req.ImageURL, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DestinationByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDestinationNotFound
			}
			return derr
		}
		derr := tx.Destinations().Update(ctx, tx.DB(), dest)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return errs.ErrDuplicateName
		}
		return derr
	})
}

func (uc *destinationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().DestinationByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDestinationNotFound
			}
			return derr
		}
		// Reviews and purchases cascade at the storage layer.
		return tx.Destinations().Delete(ctx, tx.DB(), id)
	})
}
