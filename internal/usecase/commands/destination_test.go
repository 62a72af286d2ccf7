//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domdestination "relecloud-api/internal/domain/destination"
	"relecloud-api/internal/pkg/clock"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/shared"
	"relecloud-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDestinationCommands(uow *fakeUoW) commands.DestinationCommands {
	return commands.NewDestinationCommands(uow, clock.NewMockClock(time.Now()))
}

func TestDestinationCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("create returns the new id", func(t *testing.T) {
		uow := newFakeUoW()
		createdID := uuid.New()
		uow.tx.destinations.create = func(d *domdestination.Destination) (uuid.UUID, error) {
			assert.Equal(t, "Reykjavik", d.Name())
			return createdID, nil
		}

		got, err := newDestinationCommands(uow).Create(ctx, commands.UpsertDestinationRequest{
			Name:        "Reykjavik",
			Description: "Gateway to glaciers and hot springs.",
		})
		require.NoError(t, err)

		assert.Equal(t, createdID, got.DestinationID)
	})

	t.Run("create rejects a taken name", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.destinations.create = func(_ *domdestination.Destination) (uuid.UUID, error) {
			return uuid.Nil, duplicateKeyRepoErr()
		}

		_, err := newDestinationCommands(uow).Create(ctx, commands.UpsertDestinationRequest{
			Name:        "Reykjavik",
			Description: "Already in the catalog.",
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateName)
	})

	t.Run("create rejects invalid input", func(t *testing.T) {
		uow := newFakeUoW()

		_, err := newDestinationCommands(uow).Create(ctx, commands.UpsertDestinationRequest{
			Name: "",
		})

		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("update requires an existing destination", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.reads.destinationByID = func(_ uuid.UUID) (*shared.DestinationSnapshot, error) {
			return nil, notFoundRepoErr()
		}

		err := newDestinationCommands(uow).Update(ctx, uuid.New(), commands.UpsertDestinationRequest{
			Name:        "Renamed",
			Description: "Still valid.",
		})

		assert.ErrorIs(t, err, errs.ErrDestinationNotFound)
	})

	t.Run("delete removes an existing destination", func(t *testing.T) {
		uow := newFakeUoW()
		destinationID := uuid.New()
		uow.tx.reads.destinationByID = func(id uuid.UUID) (*shared.DestinationSnapshot, error) {
			return builder.NewDestinationBuilder().WithID(id).BuildSnapshot(), nil
		}
		deleted := false
		uow.tx.destinations.delete = func(id uuid.UUID) error {
			assert.Equal(t, destinationID, id)
			deleted = true
			return nil
		}

		err := newDestinationCommands(uow).Delete(ctx, destinationID)
		require.NoError(t, err)

		assert.True(t, deleted)
	})
}
