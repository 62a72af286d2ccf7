package api

import (
	"errors"
	"net/http"

	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/internal/handler/httperr"
	"relecloud-api/internal/handler/middleware"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	cmds commands.PurchaseCommands
}

func NewPurchaseHandler(cmds commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{cmds: cmds}
}

// @Summary Buy destination
// @Description Purchase a destination, unlocking review authorship. Buying again is a no-op.
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 201 {object} resdto.PurchaseResponse
// @Success 200 {object} resdto.PurchaseResponse "Repeat purchase"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /destinations/{id}/purchase [post]
func (h *PurchaseHandler) BuyDestination(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid destination id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.BuyDestination(c.Request.Context(), userID, destinationID)
	if err != nil {
		if errors.Is(err, errs.ErrDestinationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Purchase failed", nil)
		return
	}

	status := http.StatusCreated
	if result.AlreadyOwned {
		status = http.StatusOK
	}
	c.JSON(status, resdto.PurchaseResponse{
		DestinationID: destinationID,
		AlreadyOwned:  result.AlreadyOwned,
	})
}
