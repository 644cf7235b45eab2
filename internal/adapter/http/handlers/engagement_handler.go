package handlers

import (
	"context"
	"net/http"

	request "consultoria_xpto/internal/adapter/http/dto/request"
	response "consultoria_xpto/internal/adapter/http/dto/response"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EngagementHandler handles HTTP requests for engagements and their lifecycle.
type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
	log     *zap.Logger
}

func NewEngagementHandler(uc usecase.IEngagementUseCase, log *zap.Logger) *EngagementHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EngagementHandler{usecase: uc, log: log}
}

// ListEngagements godoc
// @Summary      List engagements
// @Tags         engagements
// @Produce      json
// @Param        consultant  query  string  false  "Consultant name, or all/todos"
// @Param        type        query  string  false  "consulting or upsell"
// @Param        status      query  string  false  "in_progress, paused, completed or cancelled"
// @Param        from        query  string  false  "Start date lower bound (YYYY-MM-DD)"
// @Param        to          query  string  false  "End date upper bound (YYYY-MM-DD)"
// @Success      200  {array}   response.EngagementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /engagements [get]
func (h *EngagementHandler) ListEngagements(c *gin.Context) {
	var q request.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	filter, err := q.ToFilterSpec()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEngagements(items))
}

// GetEngagement godoc
// @Summary      Get an engagement
// @Tags         engagements
// @Produce      json
// @Param        id   path      string  true  "Engagement ID"
// @Success      200  {object}  response.EngagementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /engagements/{id} [get]
func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

// CreateEngagement godoc
// @Summary      Register an engagement
// @Tags         engagements
// @Accept       json
// @Produce      json
// @Param        body  body      request.EngagementRequest  true  "Engagement"
// @Success      201   {object}  response.EngagementResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /engagements [post]
func (h *EngagementHandler) CreateEngagement(c *gin.Context) {
	var payload request.EngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	e, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEngagement(e))
}

// UpdateEngagement godoc
// @Summary      Edit an open engagement
// @Tags         engagements
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Engagement ID"
// @Param        body  body      request.UpdateEngagementRequest  true  "Changes"
// @Success      200   {object}  response.EngagementResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /engagements/{id} [patch]
func (h *EngagementHandler) UpdateEngagement(c *gin.Context) {
	var payload request.UpdateEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	changes, err := payload.ToChanges()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	e, err := h.usecase.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

// DeleteEngagement godoc
// @Summary      Delete an engagement
// @Tags         engagements
// @Param        id   path  string  true  "Engagement ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /engagements/{id} [delete]
func (h *EngagementHandler) DeleteEngagement(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PauseEngagement godoc
// @Summary      Pause an in-progress engagement
// @Tags         lifecycle
// @Produce      json
// @Param        id   path      string  true  "Engagement ID"
// @Success      200  {object}  response.EngagementResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /engagements/{id}/pause [post]
func (h *EngagementHandler) PauseEngagement(c *gin.Context) {
	h.transition(c, h.usecase.Pause)
}

// ResumeEngagement godoc
// @Summary      Resume a paused engagement
// @Tags         lifecycle
// @Produce      json
// @Param        id   path      string  true  "Engagement ID"
// @Success      200  {object}  response.EngagementResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /engagements/{id}/resume [post]
func (h *EngagementHandler) ResumeEngagement(c *gin.Context) {
	h.transition(c, h.usecase.Resume)
}

// CancelEngagement godoc
// @Summary      Cancel an engagement
// @Tags         lifecycle
// @Produce      json
// @Param        id   path      string  true  "Engagement ID"
// @Success      200  {object}  response.EngagementResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /engagements/{id}/cancel [post]
func (h *EngagementHandler) CancelEngagement(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// CompleteEngagement godoc
// @Summary      Complete an engagement
// @Description  Evaluates the deadline and computes the commission from the rating.
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true   "Engagement ID"
// @Param        body  body      request.CompleteEngagementRequest  false  "Outcome"
// @Success      200   {object}  response.EngagementResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /engagements/{id}/complete [post]
func (h *EngagementHandler) CompleteEngagement(c *gin.Context) {
	var payload request.CompleteEngagementRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	e, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func (h *EngagementHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Engagement, error),
) {
	e, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}
