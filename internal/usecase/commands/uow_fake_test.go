//go:build unit

package commands_test

import (
	"context"

	domcruise "relecloud-api/internal/domain/cruise"
	domdestination "relecloud-api/internal/domain/destination"
	dominforeq "relecloud-api/internal/domain/inforequest"
	domreview "relecloud-api/internal/domain/review"
	"relecloud-api/internal/infra"
	"relecloud-api/internal/infra/db"
	"relecloud-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work. Unset function fields panic on call, which marks
// the code path as unexpected for that test.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{reads: &fakeReads{}}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	reads        *fakeReads
	destinations fakeDestinationRepo
	cruises      fakeCruiseRepo
	reviews      fakeReviewRepo
	infoRequests fakeInfoRequestRepo
	purchases    fakePurchaseRepo
	users        fakeUserRepo
}

func (t *fakeTx) Destinations() shared.DestinationRepository { return &t.destinations }
func (t *fakeTx) Cruises() shared.CruiseRepository           { return &t.cruises }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return &t.reviews }
func (t *fakeTx) InfoRequests() shared.InfoRequestRepository { return &t.infoRequests }
func (t *fakeTx) Purchases() shared.PurchaseRepository       { return &t.purchases }
func (t *fakeTx) Users() shared.UserRepository               { return &t.users }
func (t *fakeTx) Reads() shared.CommandReads                 { return t.reads }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeReads struct {
	destinationByID   func(id uuid.UUID) (*shared.DestinationSnapshot, error)
	cruiseByID        func(id uuid.UUID) (*shared.CruiseSnapshot, error)
	reviewByID        func(id uuid.UUID) (*shared.ReviewSnapshot, error)
	hasPurchase       func(userID, destinationID uuid.UUID) (bool, error)
	infoRequestExists func(email string, cruiseID *uuid.UUID) (bool, error)
}

func (r *fakeReads) DestinationByID(_ context.Context, id uuid.UUID) (*shared.DestinationSnapshot, error) {
	return r.destinationByID(id)
}

func (r *fakeReads) CruiseByID(_ context.Context, id uuid.UUID) (*shared.CruiseSnapshot, error) {
	return r.cruiseByID(id)
}

func (r *fakeReads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	return r.reviewByID(id)
}

func (r *fakeReads) HasPurchase(_ context.Context, userID, destinationID uuid.UUID) (bool, error) {
	return r.hasPurchase(userID, destinationID)
}

func (r *fakeReads) InfoRequestExists(_ context.Context, email string, cruiseID *uuid.UUID) (bool, error) {
	return r.infoRequestExists(email, cruiseID)
}

type fakeDestinationRepo struct {
	create func(d *domdestination.Destination) (uuid.UUID, error)
	update func(d *domdestination.Destination) error
	delete func(id uuid.UUID) error
}

func (f *fakeDestinationRepo) Create(_ context.Context, _ db.DBTX, d *domdestination.Destination) (uuid.UUID, error) {
	return f.create(d)
}

func (f *fakeDestinationRepo) Update(_ context.Context, _ db.DBTX, d *domdestination.Destination) error {
	return f.update(d)
}

func (f *fakeDestinationRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	return f.delete(id)
}

type fakeCruiseRepo struct {
	create func(c *domcruise.Cruise) (uuid.UUID, error)
	update func(c *domcruise.Cruise) error
	delete func(id uuid.UUID) error
}

func (f *fakeCruiseRepo) Create(_ context.Context, _ db.DBTX, c *domcruise.Cruise) (uuid.UUID, error) {
	return f.create(c)
}

func (f *fakeCruiseRepo) Update(_ context.Context, _ db.DBTX, c *domcruise.Cruise) error {
	return f.update(c)
}

func (f *fakeCruiseRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	return f.delete(id)
}

type fakeReviewRepo struct {
	create func(rev *domreview.Review) (uuid.UUID, error)
	delete func(reviewID uuid.UUID) error
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *domreview.Review) (uuid.UUID, error) {
	return f.create(rev)
}

func (f *fakeReviewRepo) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	return f.delete(reviewID)
}

type fakeInfoRequestRepo struct {
	create func(req *dominforeq.InfoRequest) (uuid.UUID, error)
}

func (f *fakeInfoRequestRepo) Create(_ context.Context, _ db.DBTX, req *dominforeq.InfoRequest) (uuid.UUID, error) {
	return f.create(req)
}

type fakePurchaseRepo struct {
	create func(userID, destinationID uuid.UUID) (bool, error)
}

func (f *fakePurchaseRepo) Create(_ context.Context, _ db.DBTX, userID, destinationID uuid.UUID) (bool, error) {
	return f.create(userID, destinationID)
}

type fakeUserRepo struct {
	create          func(id uuid.UUID, email, passwordHash, role string) (uuid.UUID, error)
	updateLastLogin func(userID uuid.UUID) error
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, id uuid.UUID, email, passwordHash, role string) (uuid.UUID, error) {
	return f.create(id, email, passwordHash, role)
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	return f.updateLastLogin(userID)
}

func notFoundRepoErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func duplicateKeyRepoErr() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindDuplicateKey)
}

func foreignKeyRepoErr() error {
	return infra.WrapRepoErr("foreign key violated", nil, infra.KindForeignKeyViolated)
}
