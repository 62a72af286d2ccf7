package commands

import (
	"context"
	"fmt"
	"log/slog"

	dominforeq "relecloud-api/internal/domain/inforequest"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/pkg/ptr"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitInfoRequestRequest struct {
	Name     *string
	Email    string
	Notes    *string
	CruiseID *uuid.UUID
}

// SubmitInfoRequestResult distinguishes "persisted and notified" from
// "persisted but notification failed"; the record stands either way.
type SubmitInfoRequestResult struct {
	ID       uuid.UUID
	Notified bool
}

type InfoRequestCommands interface {
	Submit(ctx context.Context, req SubmitInfoRequestRequest) (*SubmitInfoRequestResult, error)
}

type infoRequestCommandsImpl struct {
	uow        shared.UnitOfWork
	notifier   Notifier
	clock      clock.Clock
	recipients []string
}

func NewInfoRequestCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, recipients []string) InfoRequestCommands {
	return &infoRequestCommandsImpl{
		uow:        uow,
		notifier:   notifier,
		clock:      clk,
		recipients: recipients,
	}
}

func (uc *infoRequestCommandsImpl) Submit(ctx context.Context, req SubmitInfoRequestRequest) (*SubmitInfoRequestResult, error) {
	infoReq, err := dominforeq.NewInfoRequest(uuid.Nil, req.Name, req.Email, req.Notes, req.CruiseID, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var cruiseName *string
	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if infoReq.CruiseID() != nil {
			cruise, derr := tx.Reads().CruiseByID(ctx, *infoReq.CruiseID())
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return errs.ErrCruiseNotFound
				}
				return derr
			}
			cruiseName = ptr.To(cruise.Name)
		}

		exists, derr := tx.Reads().InfoRequestExists(ctx, infoReq.Email().String(), infoReq.CruiseID())
		if derr != nil {
			return derr
		}
		if exists {
			return errs.ErrDuplicateInfoRequest
		}

		createdID, derr = tx.InfoRequests().Create(ctx, tx.DB(), infoReq)
		if derr != nil {
			// A concurrent submission can slip past the read check; the unique
			// index turns that race into the same duplicate outcome.
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.ErrDuplicateInfoRequest
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Dispatch happens after commit, at most once. A failed send never undoes
	// the persisted request.
	notified := true
	if err := uc.notifier.Send(ctx, uc.subject(cruiseName), uc.body(infoReq, cruiseName), uc.recipients); err != nil {
		slog.Warn("info request notification failed",
			"info_request_id", createdID,
			"error", err.Error())
		notified = false
	}

	return &SubmitInfoRequestResult{ID: createdID, Notified: notified}, nil
}

func (uc *infoRequestCommandsImpl) subject(cruiseName *string) string {
	if cruiseName != nil {
		return fmt.Sprintf("Info request: %s", *cruiseName)
	}
	return "Info request: general enquiry"
}

func (uc *infoRequestCommandsImpl) body(req *dominforeq.InfoRequest, cruiseName *string) string {
	name := ptr.ValueOr(req.Name(), "(not given)")
	notes := ptr.ValueOr(req.Notes(), "(none)")
	cruise := ptr.ValueOr(cruiseName, "(general)")
	return fmt.Sprintf("Name: %s\nEmail: %s\nCruise: %s\nNotes: %s\n", name, req.Email().String(), cruise, notes)
}
