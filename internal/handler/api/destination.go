package api

import (
	"errors"
	"net/http"

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

type DestinationHandler struct {
	cmds commands.DestinationCommands
	q    queries.DestinationQueries
}

func NewDestinationHandler(cmds commands.DestinationCommands, q queries.DestinationQueries) *DestinationHandler {
	return &DestinationHandler{cmds: cmds, q: q}
}

// @Summary List destinations
// @Description List all destinations ordered by review popularity
// @Tags destinations
// @Produce json
// @Success 200 {array} resdto.DestinationResponse
// @Failure 500 {object} map[string]string
// @Router /destinations [get]
func (h *DestinationHandler) List(c *gin.Context) {
	views, err := h.q.ListByPopularity(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list destinations", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": resdto.FromDestinationList(views)})
}

// @Summary Get destination
// @Description Get a destination with its recent reviews; includes the purchased flag for signed-in viewers
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} resdto.DestinationDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /destinations/{id} [get]
func (h *DestinationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var viewerID *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		viewerID = &userID
	}

	view, err := h.q.GetDetail(c.Request.Context(), id, viewerID)
	if err != nil {
		if errors.Is(err, errs.ErrDestinationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load destination", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDestinationDetail(view))
}

// @Summary Create destination
// @Description Create a new destination (admin only)
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertDestinationRequest true "Create destination request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /destinations [post]
func (h *DestinationHandler) Create(c *gin.Context) {
	var req reqdto.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortDestinationCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.DestinationID.String()})
}

// @Summary Update destination
// @Description Update a destination (admin only)
// @Tags destinations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body reqdto.UpsertDestinationRequest true "Update destination request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /destinations/{id} [put]
func (h *DestinationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpsertDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortDestinationCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete destination
// @Description Delete a destination and its reviews (admin only)
// @Tags destinations
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortDestinationCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortDestinationCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDestinationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
	case errors.Is(err, errs.ErrDuplicateName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Destination name already in use", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
