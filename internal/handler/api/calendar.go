package api

import (
	"net/http"

	reqdto "temple-booking/internal/handler/dto/request"
	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Day calendar
// @Tags calendar
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param resource_id query string false "Hall ID"
// @Param include_cancelled query bool false "Include cancelled bookings"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	var q reqdto.CalendarDayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	date, err := reqdto.ParseDate(q.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Day(c.Request.Context(), date, q.ResourceUUID(), q.IncludeCancelled)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Week calendar
// @Description Any range of at most 31 days
// @Tags calendar
// @Produce json
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Param resource_id query string false "Hall ID"
// @Param include_cancelled query bool false "Include cancelled bookings"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar/week [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	var q reqdto.CalendarWeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	start, err := reqdto.ParseDate(q.StartDate)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	end, err := reqdto.ParseDate(q.EndDate)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Week(c.Request.Context(), start, end, q.ResourceUUID(), q.IncludeCancelled)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Month calendar
// @Tags calendar
// @Produce json
// @Param year query int true "2000-2100"
// @Param month query int true "1-12"
// @Param resource_id query string false "Hall ID"
// @Param include_cancelled query bool false "Include cancelled bookings"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	var q reqdto.CalendarMonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	view, err := h.q.Month(c.Request.Context(), q.Year, q.Month, q.ResourceUUID(), q.IncludeCancelled)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}
