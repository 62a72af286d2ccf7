package api

import (
	"errors"
	"net/http"

	reqdto "relecloud-api/internal/handler/dto/request"
	resdto "relecloud-api/internal/handler/dto/response"
	"relecloud-api/internal/handler/httperr"
	"relecloud-api/internal/pkg/errs"
	"relecloud-api/internal/usecase/commands"
	"relecloud-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CruiseHandler struct {
	cmds commands.CruiseCommands
	q    queries.CruiseQueries
}

func NewCruiseHandler(cmds commands.CruiseCommands, q queries.CruiseQueries) *CruiseHandler {
	return &CruiseHandler{cmds: cmds, q: q}
}

// @Summary List cruises
// @Description List all cruises with their visited destinations
// @Tags cruises
// @Produce json
// @Success 200 {array} resdto.CruiseResponse
// @Failure 500 {object} map[string]string
// @Router /cruises [get]
func (h *CruiseHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cruises", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cruises": resdto.FromCruiseList(views)})
}

// @Summary Get cruise
// @Description Get a cruise with reviews aggregated across its destinations
// @Tags cruises
// @Produce json
// @Param id path string true "Cruise ID"
// @Success 200 {object} resdto.CruiseDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cruises/{id} [get]
func (h *CruiseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCruiseNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cruise not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cruise", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCruiseDetail(view))
}

// @Summary Create cruise
// @Description Create a new cruise (admin only)
// @Tags cruises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertCruiseRequest true "Create cruise request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cruises [post]
func (h *CruiseHandler) Create(c *gin.Context) {
	var req reqdto.UpsertCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortCruiseCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.CruiseID.String()})
}

// @Summary Update cruise
// @Description Update a cruise and its itinerary (admin only)
// @Tags cruises
// @Accept json
// @Security BearerAuth
// @Param id path string true "Cruise ID"
// @Param request body reqdto.UpsertCruiseRequest true "Update cruise request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cruises/{id} [put]
func (h *CruiseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpsertCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortCruiseCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete cruise
// @Description Delete a cruise (admin only); destinations and reviews remain. Blocked while info requests reference it.
// @Tags cruises
// @Security BearerAuth
// @Param id path string true "Cruise ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cruises/{id} [delete]
func (h *CruiseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortCruiseCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortCruiseCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCruiseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cruise not found", nil)
	case errors.Is(err, errs.ErrDestinationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Destination not found", nil)
	case errors.Is(err, errs.ErrDuplicateName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cruise name already in use", nil)
	case errors.Is(err, errs.ErrCruiseHasRequests):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cruise has outstanding info requests", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
