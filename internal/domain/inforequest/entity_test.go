//go:build unit

package inforequest_test

import (
	"strings"
	"testing"
	"time"

	"relecloud-api/internal/domain/inforequest"
	"relecloud-api/internal/pkg/ptr"
	"relecloud-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.InfoRequestBuilder)
	errIs  error
}

func TestInfoRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewInfoRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "traveler@example.com", actual.Email().String())
		assert.NotNil(t, actual.CruiseID())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing email",
				mutate: func(b *builder.InfoRequestBuilder) { b.WithEmail("") },
				errIs:  inforequest.ErrInvalidEmail,
			},
			{
				name:   "malformed email",
				mutate: func(b *builder.InfoRequestBuilder) { b.WithEmail("not-an-email") },
				errIs:  inforequest.ErrInvalidEmail,
			},
			{
				name:   "valid email",
				mutate: func(b *builder.InfoRequestBuilder) { b.WithEmail("ok@example.com") },
			},
		})
	})

	t.Run("optional field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "nil name",
				mutate: func(b *builder.InfoRequestBuilder) { b.WithName(nil) },
			},
			{
				name: "name too long",
				mutate: func(b *builder.InfoRequestBuilder) {
					b.WithName(ptr.To(strings.Repeat("n", inforequest.MaxNameLength+1)))
				},
				errIs: inforequest.ErrNameTooLong,
			},
			{
				name:   "nil notes",
				mutate: func(b *builder.InfoRequestBuilder) { b.WithNotes(nil) },
			},
			{
				name: "notes too long",
				mutate: func(b *builder.InfoRequestBuilder) {
					b.WithNotes(ptr.To(strings.Repeat("x", inforequest.MaxNotesLength+1)))
				},
				errIs: inforequest.ErrNotesTooLong,
			},
		})
	})

	t.Run("general enquiry has no cruise", func(t *testing.T) {
		actual, err := builder.NewInfoRequestBuilder().AsGeneralEnquiry().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Nil(t, actual.CruiseID())
	})

	t.Run("blank optional fields collapse to nil", func(t *testing.T) {
		actual, err := inforequest.NewInfoRequest(
			uuid.Nil, ptr.To("   "), "traveler@example.com", ptr.To(""), nil, time.Now())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Nil(t, actual.Name())
		assert.Nil(t, actual.Notes())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewInfoRequestBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
