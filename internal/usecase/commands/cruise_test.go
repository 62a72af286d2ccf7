//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domcruise "relecloud-api/internal/domain/cruise"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/shared"
	"relecloud-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCruiseCommands(uow *fakeUoW) commands.CruiseCommands {
	return commands.NewCruiseCommands(uow, clock.NewMockClock(time.Now()))
}

func TestCruiseCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("create validates every itinerary destination", func(t *testing.T) {
		uow := newFakeUoW()
		known := uuid.New()
		var checked []uuid.UUID
		uow.tx.reads.destinationByID = func(id uuid.UUID) (*shared.DestinationSnapshot, error) {
			checked = append(checked, id)
			return builder.NewDestinationBuilder().WithID(id).BuildSnapshot(), nil
		}
		createdID := uuid.New()
		uow.tx.cruises.create = func(c *domcruise.Cruise) (uuid.UUID, error) {
			return createdID, nil
		}

		req := builder.NewCruiseBuilder().WithDestinationIDs(known, uuid.New()).BuildCommand()
		got, err := newCruiseCommands(uow).Create(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, createdID, got.CruiseID)
		assert.Len(t, checked, 2)
		assert.Equal(t, known, checked[0])
	})

	t.Run("create rejects an unknown itinerary destination", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.destinationByID = func(_ uuid.UUID) (*shared.DestinationSnapshot, error) {
			return nil, notFoundRepoErr()
		}

		req := builder.NewCruiseBuilder().BuildCommand()
		_, err := newCruiseCommands(uow).Create(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDestinationNotFound)
	})

	t.Run("create rejects a taken name", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.destinationByID = func(id uuid.UUID) (*shared.DestinationSnapshot, error) {
			return builder.NewDestinationBuilder().WithID(id).BuildSnapshot(), nil
		}
		uow.tx.cruises.create = func(_ *domcruise.Cruise) (uuid.UUID, error) {
			return uuid.Nil, duplicateKeyRepoErr()
		}

		req := builder.NewCruiseBuilder().BuildCommand()
		_, err := newCruiseCommands(uow).Create(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateName)
	})

	t.Run("create rejects invalid input", func(t *testing.T) {
		uow := newFakeUoW()

		req := builder.NewCruiseBuilder().WithName("").BuildCommand()
		_, err := newCruiseCommands(uow).Create(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("update requires an existing cruise", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.cruiseByID = func(_ uuid.UUID) (*shared.CruiseSnapshot, error) {
			return nil, notFoundRepoErr()
		}

		req := builder.NewCruiseBuilder().BuildCommand()
		err := newCruiseCommands(uow).Update(ctx, uuid.New(), req)

		assert.ErrorIs(t, err, errs.ErrCruiseNotFound)
	})

	t.Run("delete leaves destinations and reviews alone", func(t *testing.T) {
		uow := newFakeUoW()
		cruiseID := uuid.New()
		uow.tx.reads.cruiseByID = func(id uuid.UUID) (*shared.CruiseSnapshot, error) {
			return &shared.CruiseSnapshot{ID: id, Name: "Fjords of Norway"}, nil
		}
		deleted := false
		uow.tx.cruises.delete = func(id uuid.UUID) error {
			assert.Equal(t, cruiseID, id)
			deleted = true
			return nil
		}

		err := newCruiseCommands(uow).Delete(ctx, cruiseID)
		require.NoError(t, err)

		assert.True(t, deleted)
	})

	t.Run("delete is blocked while info requests reference the cruise", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.cruiseByID = func(id uuid.UUID) (*shared.CruiseSnapshot, error) {
			return &shared.CruiseSnapshot{ID: id, Name: "Fjords of Norway"}, nil
		}
		uow.tx.cruises.delete = func(_ uuid.UUID) error {
			return foreignKeyRepoErr()
		}

		err := newCruiseCommands(uow).Delete(ctx, uuid.New())

		assert.ErrorIs(t, err, errs.ErrCruiseHasRequests)
	})
}
