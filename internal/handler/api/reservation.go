package api

import (
	"net/http"

	reqdto "temple-booking/internal/handler/dto/request"
	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/usecase/commands"
	"temple-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create hall booking
// @Description Book a hall for a date and time range. Confirmed bookings may not overlap.
// @Tags hall-bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Create hall booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/hall-bookings [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ReservationID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/hall-bookings/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get hall booking
// @Tags hall-bookings
// @Produce json
// @Param id path string true "Hall booking ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/hall-bookings/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List hall bookings
// @Tags hall-bookings
// @Produce json
// @Param status query string false "pending, confirmed or cancelled"
// @Param resource_id query string false "Hall ID"
// @Param skip query int false "Offset"
// @Param limit query int false "Max items (default 100, max 200)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hall-bookings [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	items, err := h.q.List(c.Request.Context(), q.Status, q.ResourceUUID(), q.Skip, q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

// @Summary Change hall booking status
// @Description pending -> confirmed | cancelled, confirmed -> cancelled. Cancelled is terminal.
// @Tags hall-bookings
// @Accept json
// @Produce json
// @Param id path string true "Hall booking ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "Status change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/hall-bookings/{id} [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
