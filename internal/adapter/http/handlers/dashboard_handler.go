package handlers

import (
	"net/http"

	request "consultoria_xpto/internal/adapter/http/dto/request"
	response "consultoria_xpto/internal/adapter/http/dto/response"
	"consultoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregate views over filtered engagements.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	log     *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, log *zap.Logger) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{usecase: uc, log: log}
}

// GetStats godoc
// @Summary      Dashboard headline figures
// @Tags         dashboard
// @Produce      json
// @Param        consultant  query  string  false  "Consultant name, or all/todos"
// @Param        type        query  string  false  "consulting or upsell"
// @Param        status      query  string  false  "Engagement status"
// @Param        from        query  string  false  "YYYY-MM-DD"
// @Param        to          query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  response.StatsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
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

	stats, err := h.usecase.Stats(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

// GetBreakdown godoc
// @Summary      Grouped totals
// @Description  consultant groups commission of completed engagements; tier, type, status and month group consulting value.
// @Tags         dashboard
// @Produce      json
// @Param        dimension   path   string  true   "consultant, tier, type, status or month"
// @Param        consultant  query  string  false  "Consultant name, or all/todos"
// @Param        type        query  string  false  "consulting or upsell"
// @Param        status      query  string  false  "Engagement status"
// @Param        from        query  string  false  "YYYY-MM-DD"
// @Param        to          query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  response.BreakdownResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /dashboard/breakdown/{dimension} [get]
func (h *DashboardHandler) GetBreakdown(c *gin.Context) {
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

	dim := usecase.Dimension(c.Param("dimension"))
	buckets, err := h.usecase.Breakdown(c.Request.Context(), filter, dim)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBuckets(string(dim), buckets))
}
