package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "relecloud-api/internal/handler/dto/request"
	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/internal/handler/httperr"
	"relecloud-api/internal/handler/middleware"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Create a review for a purchased destination
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /destinations/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
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
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), destinationID, req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDestinationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
		case errors.Is(err, errs.ErrReviewNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Purchase required to review", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create review failed", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary List destination reviews
// @Description List reviews for a destination with keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Destination ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /destinations/{id}/reviews [get]
func (h *ReviewHandler) ListByDestination(c *gin.Context) {
	destinationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid destination id", nil)
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByDestination(c.Request.Context(), destinationID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp := gin.H{"reviews": resdto.FromReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Delete(c.Request.Context(), id, actorID, string(role)); err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, errs.ErrReviewNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
