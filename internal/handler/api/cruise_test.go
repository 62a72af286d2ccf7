//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"relecloud-api/internal/domain/user"
	"relecloud-api/internal/handler/api"
	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/pkg/ptr"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"
	"relecloud-api/tests/common/builder"
	"relecloud-api/tests/common/httptest"
	"relecloud-api/tests/common/testutil"
	commandsmock "relecloud-api/tests/mock/commands"
	queriesmock "relecloud-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CruiseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCruiseCommands
	mockQueries  *queriesmock.MockCruiseQueries
	handler      *api.CruiseHandler
}

func (s *CruiseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCruiseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCruiseQueries(s.mockCtrl)
	s.handler = api.NewCruiseHandler(s.mockCommands, s.mockQueries)

	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/cruises", s.handler.List)
	s.router.GET("/cruises/:id", s.handler.Get)
	s.router.POST("/cruises", adminMiddleware, s.handler.Create)
	s.router.PUT("/cruises/:id", adminMiddleware, s.handler.Update)
	s.router.DELETE("/cruises/:id", adminMiddleware, s.handler.Delete)
}

func (s *CruiseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCruiseHandlerSuite(t *testing.T) {
	suite.Run(t, new(CruiseHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *CruiseHandlerTestSuite) TestList() {
	views := []*queries.CruiseView{
		builder.NewCruiseBuilder().WithName("Fjords of Norway").BuildView(),
		builder.NewCruiseBuilder().WithName("Arctic Explorer").BuildView(),
	}

	s.Run("success: returns cruises with their itinerary", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cruises", nil, "")

		var response struct {
			Cruises []*resdto.CruiseResponse `json:"cruises"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Cruises, 2)
		s.Equal("Fjords of Norway", response.Cruises[0].Name)
		s.Len(response.Cruises[0].Destinations, 2)
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cruises", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list cruises")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CruiseHandlerTestSuite) TestGet() {
	cruiseID := uuid.New()
	url := "/cruises/" + cruiseID.String()

	detail := &queries.CruiseDetailView{
		CruiseView:    *builder.NewCruiseBuilder().BuildView(),
		ReviewCount:   7,
		AverageRating: ptr.To(4.1),
		Reviews: []*queries.ReviewListItem{
			builder.NewReviewBuilder().WithRating(4).BuildListItem(),
		},
	}

	s.Run("success: aggregates reviews across visited destinations", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), cruiseID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CruiseDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(7, response.ReviewCount)
		s.Require().NotNil(response.AverageRating)
		s.InDelta(4.1, *response.AverageRating, 0.001)
		s.Len(response.Reviews, 1)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cruises/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown cruise", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), cruiseID).
			Return(nil, errs.ErrCruiseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cruise not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CruiseHandlerTestSuite) TestCreate() {
	reqBody := builder.NewCruiseBuilder().BuildUpsertRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateCruiseResult{CruiseID: createdID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruises", reqBody, "admin-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID.String(), response["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: departure_date (required)", mutate: testutil.Field("departure_date", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruises", requestMap, "admin-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruises", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for an unknown itinerary destination", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDestinationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruises", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Destination not found")
	})

	s.Run("error: 409 Conflict for a taken name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cruises", reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cruise name already in use")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *CruiseHandlerTestSuite) TestUpdate() {
	cruiseID := uuid.New()
	url := "/cruises/" + cruiseID.String()
	reqBody := builder.NewCruiseBuilder().WithName("Renamed Voyage").BuildUpsertRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), cruiseID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown cruise", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), cruiseID, gomock.Any()).
			Return(errs.ErrCruiseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cruise not found")
	})
}

func (s *CruiseHandlerTestSuite) TestDelete() {
	cruiseID := uuid.New()
	url := "/cruises/" + cruiseID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), cruiseID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown cruise", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), cruiseID).
			Return(errs.ErrCruiseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cruise not found")
	})

	s.Run("error: 409 Conflict while info requests reference the cruise", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), cruiseID).
			Return(errs.ErrCruiseHasRequests).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cruise has outstanding info requests")
	})
}
