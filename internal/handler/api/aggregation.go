package api

import (
	"net/http"

	reqdto "temple-booking/internal/handler/dto/request"
	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AggregationHandler serves the seva booking reports. Every status is counted.
type AggregationHandler struct {
	q queries.AggregationQueries
}

func NewAggregationHandler(q queries.AggregationQueries) *AggregationHandler {
	return &AggregationHandler{q: q}
}

// @Summary Bookings of one seva
// @Tags aggregation
// @Produce json
// @Param seva_id query string true "Seva ID"
// @Param start_date query string false "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} resdto.ServiceSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/seva-bookings/aggregation/by-seva [get]
func (h *AggregationHandler) ByService(c *gin.Context) {
	var q reqdto.ByServiceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	sevaID, err := uuid.Parse(q.SevaID)
	if err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	summary, err := h.q.ByService(c.Request.Context(), sevaID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceSummary(summary, filter))
}

// @Summary Bookings grouped by seva date
// @Tags aggregation
// @Produce json
// @Param start_date query string false "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} resdto.DateAggregationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/seva-bookings/aggregation/by-date [get]
func (h *AggregationHandler) ByDate(c *gin.Context) {
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	entries, err := h.q.ByDate(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateEntries(entries, filter))
}

// @Summary Totals for a selection of sevas
// @Tags aggregation
// @Accept json
// @Produce json
// @Param request body reqdto.SelectionRequest true "Seva ids and optional date range"
// @Success 200 {object} resdto.SelectionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/seva-bookings/aggregation/selection [post]
func (h *AggregationHandler) BySelection(c *gin.Context) {
	var req reqdto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := req.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	sel, err := h.q.BySelection(c.Request.Context(), req.SevaIDs, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelection(sel, filter))
}
