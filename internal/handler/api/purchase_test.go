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
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/tests/common/httptest"
	commandsmock "relecloud-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
	userID       uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/destinations/:id/purchase", authMiddleware, s.handler.BuyDestination)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestBuyDestination() {
	destinationID := uuid.New()
	url := "/destinations/" + destinationID.String() + "/purchase"

	s.Run("success: first purchase returns 201 with already_owned=false", func() {
		s.mockCommands.EXPECT().BuyDestination(gomock.Any(), s.userID, destinationID).
			Return(&commands.BuyDestinationResult{AlreadyOwned: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(destinationID, response.DestinationID)
		s.False(response.AlreadyOwned)
	})

	s.Run("success: buying again replays with 200", func() {
		s.mockCommands.EXPECT().BuyDestination(gomock.Any(), s.userID, destinationID).
			Return(&commands.BuyDestinationResult{AlreadyOwned: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.AlreadyOwned)
	})

	s.Run("error: 400 Bad Request for invalid destination UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/destinations/invalid-uuid/purchase", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid destination id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for unknown destination", func() {
		s.mockCommands.EXPECT().BuyDestination(gomock.Any(), s.userID, destinationID).
			Return(nil, errs.ErrDestinationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Destination not found")
	})

	s.Run("error: returns 500 Internal Server Error on command error", func() {
		s.mockCommands.EXPECT().BuyDestination(gomock.Any(), s.userID, destinationID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Purchase failed")
	})
}
