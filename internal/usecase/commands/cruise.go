package commands

import (
	"context"
	"time"

	domcruise "relecloud-api/internal/domain/cruise"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertCruiseRequest struct {
	Name           string
	Description    string
	DepartureDate  time.Time
	DestinationIDs []uuid.UUID
}

type CreateCruiseResult struct {
	CruiseID uuid.UUID
}

type CruiseCommands interface {
	Create(ctx context.Context, req UpsertCruiseRequest) (*CreateCruiseResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertCruiseRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cruiseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCruiseCommands(uow shared.UnitOfWork, clk clock.Clock) CruiseCommands {
	return &cruiseCommandsImpl{uow: uow, clock: clk}
}

func (uc *cruiseCommandsImpl) Create(ctx context.Context, req UpsertCruiseRequest) (*CreateCruiseResult, error) {
	cr, err := domcruise.NewCruise(uuid.Nil, req.Name, req.Description, req.DepartureDate, req.DestinationIDs, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.checkDestinations(ctx, tx, cr.DestinationIDs()); derr != nil {
			return derr
		}
		var derr error
		createdID, derr = tx.Cruises().Create(ctx, tx.DB(), cr)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return errs.ErrDuplicateName
		}
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateCruiseResult{CruiseID: createdID}, nil
}

func (uc *cruiseCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpsertCruiseRequest) error {
	cr, err := domcruise.NewCruise(id, req.Name, req.Description, req.DepartureDate, req.DestinationIDs, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CruiseByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrCruiseNotFound
			}
			return derr
		}
		if derr := uc.checkDestinations(ctx, tx, cr.DestinationIDs()); derr != nil {
			return derr
		}
		derr := tx.Cruises().Update(ctx, tx.DB(), cr)
		if infra.IsKind(derr, infra.KindDuplicateKey) {
			return errs.ErrDuplicateName
		}
		return derr
	})
}

func (uc *cruiseCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().CruiseByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrCruiseNotFound
			}
			return derr
		}
		derr := tx.Cruises().Delete(ctx, tx.DB(), id)
		// Info requests are never deleted; the fk blocks the cascade.
		if infra.IsKind(derr, infra.KindForeignKeyViolated) {
			return errs.ErrCruiseHasRequests
		}
		return derr
	})
}

func (uc *cruiseCommandsImpl) checkDestinations(ctx context.Context, tx shared.Tx, ids []uuid.UUID) error {
	for _, destID := range ids {
		if _, derr := tx.Reads().DestinationByID(ctx, destID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrDestinationNotFound
			}
			return derr
		}
	}
	return nil
}
