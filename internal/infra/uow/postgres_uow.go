package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/infra/readstore"
	"relecloud-api/internal/infra/repository"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	destinationRepo shared.DestinationRepository
	cruiseRepo      shared.CruiseRepository
	reviewRepo      shared.ReviewRepository
	infoRequestRepo shared.InfoRequestRepository
	purchaseRepo    shared.PurchaseRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Destinations() shared.DestinationRepository {
	if t.destinationRepo == nil {
		t.destinationRepo = repository.NewDestinationRepository()
	}
	return t.destinationRepo
}

func (t *pgTx) Cruises() shared.CruiseRepository {
	if t.cruiseRepo == nil {
		t.cruiseRepo = repository.NewCruiseRepository()
	}
	return t.cruiseRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) InfoRequests() shared.InfoRequestRepository {
	if t.infoRequestRepo == nil {
		t.infoRequestRepo = repository.NewInfoRequestRepository()
	}
	return t.infoRequestRepo
}

func (t *pgTx) Purchases() shared.PurchaseRepository {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository()
	}
	return t.purchaseRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	destinationStore *readstore.DestinationReadStore
	cruiseStore      *readstore.CruiseReadStore
	reviewStore      *readstore.ReviewReadStore
	infoRequestStore *readstore.InfoRequestReadStore
}

func (r *commandReads) DestinationByID(ctx context.Context, id uuid.UUID) (*shared.DestinationSnapshot, error) {
	if r.destinationStore == nil {
		r.destinationStore = readstore.NewDestinationReadStore(r.dbtx)
	}

	view, err := r.destinationStore.FindByIDWithStats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.DestinationSnapshot{
		ID:   view.ID,
		Name: view.Name,
	}, nil
}

func (r *commandReads) CruiseByID(ctx context.Context, id uuid.UUID) (*shared.CruiseSnapshot, error) {
	if r.cruiseStore == nil {
		r.cruiseStore = readstore.NewCruiseReadStore(r.dbtx)
	}

	view, err := r.cruiseStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	destinationIDs := make([]uuid.UUID, len(view.Destinations))
	for i, ref := range view.Destinations {
		destinationIDs[i] = ref.ID
	}

	return &shared.CruiseSnapshot{
		ID:             view.ID,
		Name:           view.Name,
		DepartureDate:  view.DepartureDate,
		DestinationIDs: destinationIDs,
	}, nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.dbtx)
	}

	view, err := r.reviewStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ReviewSnapshot{
		ID:            view.ID,
		DestinationID: view.DestinationID,
		AuthorID:      view.AuthorID,
		Rating:        view.Rating,
		Comment:       view.Comment,
	}, nil
}

func (r *commandReads) HasPurchase(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	if r.destinationStore == nil {
		r.destinationStore = readstore.NewDestinationReadStore(r.dbtx)
	}
	return r.destinationStore.HasPurchase(ctx, userID, destinationID)
}

func (r *commandReads) InfoRequestExists(ctx context.Context, email string, cruiseID *uuid.UUID) (bool, error) {
	if r.infoRequestStore == nil {
		r.infoRequestStore = readstore.NewInfoRequestReadStore(r.dbtx)
	}
	return r.infoRequestStore.Exists(ctx, email, cruiseID)
}
