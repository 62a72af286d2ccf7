package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "relecloud-api/internal/handler/dto/request"
	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/internal/handler/httperr"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InfoRequestHandler struct {
	cmds commands.InfoRequestCommands
	q    queries.InfoRequestQueries
}

func NewInfoRequestHandler(cmds commands.InfoRequestCommands, q queries.InfoRequestQueries) *InfoRequestHandler {
	return &InfoRequestHandler{cmds: cmds, q: q}
}

// @Summary Submit info request
// @Description Request more information about a cruise or a general enquiry. One request per email and cruise.
// @Tags info-requests
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitInfoRequestRequest true "Info request"
// @Success 201 {object} resdto.InfoRequestSubmittedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /info-requests [post]
func (h *InfoRequestHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitInfoRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateInfoRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "Request already submitted", nil)
		case errors.Is(err, errs.ErrCruiseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cruise not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Submit failed", nil)
		}
		return
	}

	// 201 even when the notification failed; the request itself is stored.
	c.JSON(http.StatusCreated, resdto.InfoRequestSubmittedResponse{
		ID:       result.ID,
		Notified: result.Notified,
	})
}

// @Summary List info requests
// @Description List recent info requests (admin only)
// @Tags info-requests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.InfoRequestResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /info-requests [get]
func (h *InfoRequestHandler) List(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}

	views, err := h.q.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list info requests", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"info_requests": resdto.FromInfoRequestList(views)})
}
