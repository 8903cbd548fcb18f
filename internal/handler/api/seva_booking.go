package api

import (
	"net/http"

	reqdto "temple-booking/internal/handler/dto/request"
	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/usecase/commands"
	"temple-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SevaBookingHandler struct {
	cmds commands.SevaBookingCommands
	q    queries.SevaBookingQueries
}

func NewSevaBookingHandler(cmds commands.SevaBookingCommands, q queries.SevaBookingQueries) *SevaBookingHandler {
	return &SevaBookingHandler{cmds: cmds, q: q}
}

// @Summary Create seva booking
// @Description The receipt date is today in the temple's time zone; the seva date may not be earlier.
// @Tags seva-bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSevaBookingRequest true "Create seva booking request"
// @Success 201 {object} resdto.SevaBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/seva-bookings [post]
func (h *SevaBookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateSevaBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/seva-bookings/"+result.BookingID.String())
	c.JSON(http.StatusCreated, resdto.FromSevaBookingView(view))
}

// @Summary Get seva booking
// @Tags seva-bookings
// @Produce json
// @Param id path string true "Seva booking ID"
// @Success 200 {object} resdto.SevaBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/seva-bookings/{id} [get]
func (h *SevaBookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSevaBookingView(view))
}

// @Summary List seva bookings
// @Tags seva-bookings
// @Produce json
// @Param mobile_no query string false "Exact mobile number"
// @Param seva_date query string false "YYYY-MM-DD"
// @Param skip query int false "Offset"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {object} resdto.SevaBookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/seva-bookings [get]
func (h *SevaBookingHandler) List(c *gin.Context) {
	var q reqdto.ListSevaBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter, q.Skip, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSevaBookingPage(page))
}

// @Summary Update seva booking
// @Description Partial update; an empty address or remarks clears it
// @Tags seva-bookings
// @Accept json
// @Produce json
// @Param id path string true "Seva booking ID"
// @Param request body reqdto.UpdateSevaBookingRequest true "Update seva booking request"
// @Success 200 {object} resdto.SevaBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/seva-bookings/{id} [put]
func (h *SevaBookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSevaBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Change seva booking status
// @Tags seva-bookings
// @Accept json
// @Produce json
// @Param id path string true "Seva booking ID"
// @Param request body reqdto.UpdateSevaBookingStatusRequest true "Status change"
// @Success 200 {object} resdto.SevaBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/seva-bookings/{id}/status [patch]
func (h *SevaBookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSevaBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithView(c, id)
}

func (h *SevaBookingHandler) respondWithView(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSevaBookingView(view))
}
