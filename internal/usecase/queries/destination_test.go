//go:build unit

package queries_test

import (
	"context"
	"testing"

	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/tests/common/builder"
	queriesmock "relecloud-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DestinationQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockDestinationReadStore
	queries       queries.DestinationQueries
}

func TestDestinationQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DestinationQueriesTestSuite))
}

func (s *DestinationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockDestinationReadStore(s.mockCtrl)
	s.queries = queries.NewDestinationQueries(s.mockReadStore)
}

func (s *DestinationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DestinationQueriesTestSuite) TestListByPopularity() {
	s.Run("orders by review count then mean then id", func() {
		mean4 := 4.0
		mean45 := 4.5
		quiet := builder.NewDestinationBuilder().WithName("Quiet Cove").BuildView()
		busy := builder.NewDestinationBuilder().WithName("Busy Bay").WithStats(10, &mean4).BuildView()
		loved := builder.NewDestinationBuilder().WithName("Loved Lagoon").WithStats(10, &mean45).BuildView()

		s.mockReadStore.EXPECT().FindAllWithStats(gomock.Any()).
			Return([]*queries.DestinationView{quiet, busy, loved}, nil)

		got, err := s.queries.ListByPopularity(context.Background())
		require.NoError(s.T(), err)
		require.Len(s.T(), got, 3)

		names := []string{got[0].Name, got[1].Name, got[2].Name}
		want := []string{"Loved Lagoon", "Busy Bay", "Quiet Cove"}
		assert.Empty(s.T(), cmp.Diff(want, names))
	})

	s.Run("ties break by id for a stable order", func() {
		idA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		idB := uuid.MustParse("00000000-0000-0000-0000-000000000002")
		mean := 3.0
		first := builder.NewDestinationBuilder().WithID(idB).WithStats(2, &mean).BuildView()
		second := builder.NewDestinationBuilder().WithName("Other").WithID(idA).WithStats(2, &mean).BuildView()

		s.mockReadStore.EXPECT().FindAllWithStats(gomock.Any()).
			Return([]*queries.DestinationView{first, second}, nil)

		got, err := s.queries.ListByPopularity(context.Background())
		require.NoError(s.T(), err)
		require.Len(s.T(), got, 2)

		assert.Equal(s.T(), idA, got[0].ID)
		assert.Equal(s.T(), idB, got[1].ID)
	})

	s.Run("rounds mean rating to one decimal for display", func() {
		raw := 4.333333
		view := builder.NewDestinationBuilder().WithStats(3, &raw).BuildView()

		s.mockReadStore.EXPECT().FindAllWithStats(gomock.Any()).
			Return([]*queries.DestinationView{view}, nil)

		got, err := s.queries.ListByPopularity(context.Background())
		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)
		require.NotNil(s.T(), got[0].AverageRating)

		assert.InDelta(s.T(), 4.3, *got[0].AverageRating, 0.0001)
	})

	s.Run("unrated destination keeps nil average", func() {
		view := builder.NewDestinationBuilder().BuildView()

		s.mockReadStore.EXPECT().FindAllWithStats(gomock.Any()).
			Return([]*queries.DestinationView{view}, nil)

		got, err := s.queries.ListByPopularity(context.Background())
		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)

		assert.Nil(s.T(), got[0].AverageRating)
		assert.Zero(s.T(), got[0].ReviewCount)
	})
}

func (s *DestinationQueriesTestSuite) TestGetDetail() {
	s.Run("anonymous viewer never sees purchased", func() {
		view := builder.NewDestinationBuilder().BuildView()

		s.mockReadStore.EXPECT().FindByIDWithStats(gomock.Any(), view.ID).Return(view, nil)
		s.mockReadStore.EXPECT().FindRecentReviews(gomock.Any(), view.ID, gomock.Any()).
			Return([]*queries.ReviewListItem{}, nil)

		got, err := s.queries.GetDetail(context.Background(), view.ID, nil)
		require.NoError(s.T(), err)

		assert.False(s.T(), got.Purchased)
	})

	s.Run("authenticated viewer with purchase sees purchased", func() {
		view := builder.NewDestinationBuilder().BuildView()
		viewerID := uuid.New()

		s.mockReadStore.EXPECT().FindByIDWithStats(gomock.Any(), view.ID).Return(view, nil)
		s.mockReadStore.EXPECT().FindRecentReviews(gomock.Any(), view.ID, gomock.Any()).
			Return([]*queries.ReviewListItem{builder.NewReviewBuilder().BuildListItem()}, nil)
		s.mockReadStore.EXPECT().HasPurchase(gomock.Any(), viewerID, view.ID).Return(true, nil)

		got, err := s.queries.GetDetail(context.Background(), view.ID, &viewerID)
		require.NoError(s.T(), err)

		assert.True(s.T(), got.Purchased)
		assert.Len(s.T(), got.Reviews, 1)
	})

	s.Run("unknown destination maps to not found", func() {
		id := uuid.New()
		s.mockReadStore.EXPECT().FindByIDWithStats(gomock.Any(), id).
			Return(nil, notFoundRepoErr())

		got, err := s.queries.GetDetail(context.Background(), id, nil)
		require.Error(s.T(), err)
		require.Nil(s.T(), got)

		assert.ErrorIs(s.T(), err, errs.ErrDestinationNotFound)
	})
}
