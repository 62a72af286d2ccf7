//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/tests/common/builder"
	queriesmock "relecloud-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockReviewReadStore
	queries       queries.ReviewQueries
}

func TestReviewQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueriesTestSuite))
}

func (s *ReviewQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockReviewReadStore(s.mockCtrl)
	s.queries = queries.NewReviewQueries(s.mockReadStore)
}

func (s *ReviewQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReviewQueriesTestSuite) TestGetByID() {
	s.Run("returns the view", func() {
		view := builder.NewReviewBuilder().BuildViewQuery()
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(context.Background(), view.ID)
		require.NoError(s.T(), err)

		assert.Equal(s.T(), view, got)
	})

	s.Run("maps missing review to not found", func() {
		id := uuid.New()
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundRepoErr())

		got, err := s.queries.GetByID(context.Background(), id)
		require.Error(s.T(), err)
		require.Nil(s.T(), got)

		assert.ErrorIs(s.T(), err, errs.ErrReviewNotFound)
	})
}

func (s *ReviewQueriesTestSuite) TestListByDestination() {
	destinationID := uuid.New()

	makeItems := func(n int) []*queries.ReviewListItem {
		items := make([]*queries.ReviewListItem, n)
		base := time.Now()
		for i := range items {
			items[i] = builder.NewReviewBuilder().
				WithCreatedAt(base.Add(-time.Duration(i) * time.Minute)).
				BuildListItem()
		}
		return items
	}

	s.Run("first page without cursor", func() {
		s.mockReadStore.EXPECT().
			FindByDestinationFirstPage(gomock.Any(), destinationID, int32(3)).
			Return(makeItems(2), nil)

		items, next, err := s.queries.ListByDestination(context.Background(), destinationID, nil, 2)
		require.NoError(s.T(), err)

		assert.Len(s.T(), items, 2)
		assert.Nil(s.T(), next)
	})

	s.Run("returns next cursor when more rows exist", func() {
		s.mockReadStore.EXPECT().
			FindByDestinationFirstPage(gomock.Any(), destinationID, int32(3)).
			Return(makeItems(3), nil)

		items, next, err := s.queries.ListByDestination(context.Background(), destinationID, nil, 2)
		require.NoError(s.T(), err)

		assert.Len(s.T(), items, 2)
		require.NotNil(s.T(), next)
		assert.NotEmpty(s.T(), next.After)
	})

	s.Run("follows a valid cursor via the keyset path", func() {
		lastCreatedAt := time.Now().Add(-time.Hour)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastCreatedAt, lastID)}

		s.mockReadStore.EXPECT().
			FindByDestinationKeyset(gomock.Any(), destinationID, gomock.Any(), lastID, int32(21)).
			Return(makeItems(1), nil)

		items, next, err := s.queries.ListByDestination(context.Background(), destinationID, cursor, 20)
		require.NoError(s.T(), err)

		assert.Len(s.T(), items, 1)
		assert.Nil(s.T(), next)
	})

	s.Run("rejects a malformed cursor", func() {
		cursor := &queries.Cursor{After: "garbage"}

		items, next, err := s.queries.ListByDestination(context.Background(), destinationID, cursor, 20)
		require.Error(s.T(), err)

		assert.ErrorIs(s.T(), err, queries.ErrInvalidCursor)
		assert.Nil(s.T(), items)
		assert.Nil(s.T(), next)
	})

	s.Run("non-positive limit falls back to the default", func() {
		s.mockReadStore.EXPECT().
			FindByDestinationFirstPage(gomock.Any(), destinationID, int32(21)).
			Return(makeItems(0), nil)

		items, next, err := s.queries.ListByDestination(context.Background(), destinationID, nil, 0)
		require.NoError(s.T(), err)

		assert.Empty(s.T(), items)
		assert.Nil(s.T(), next)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)
	id := uuid.New()

	encoded := queries.EncodeAfterCursor(now, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.True(t, now.Equal(gotTime))
	assert.Equal(t, id, gotID)
}
