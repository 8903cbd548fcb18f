package api

import (
	"net/http"

	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SevaHandler struct {
	q queries.SevaQueries
}

func NewSevaHandler(q queries.SevaQueries) *SevaHandler {
	return &SevaHandler{q: q}
}

// @Summary List sevas
// @Tags master-data
// @Produce json
// @Success 200 {array} resdto.SevaResponse
// @Router /api/sevas [get]
func (h *SevaHandler) ListSevas(c *gin.Context) {
	items, err := h.q.ListSevas(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSevaList(items))
}

// @Summary Get seva
// @Tags master-data
// @Produce json
// @Param id path string true "Seva ID"
// @Success 200 {object} resdto.SevaResponse
// @Failure 404 {object} httperr.Response
// @Router /api/sevas/{id} [get]
func (h *SevaHandler) GetSeva(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.q.GetSeva(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSevaView(v))
}

// @Summary List gotras
// @Tags master-data
// @Produce json
// @Success 200 {array} resdto.GotraResponse
// @Router /api/gotras [get]
func (h *SevaHandler) ListGotras(c *gin.Context) {
	items, err := h.q.ListGotras(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGotraList(items))
}

// @Summary Get gotra
// @Tags master-data
// @Produce json
// @Param id path string true "Gotra ID"
// @Success 200 {object} resdto.GotraResponse
// @Failure 404 {object} httperr.Response
// @Router /api/gotras/{id} [get]
func (h *SevaHandler) GetGotra(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.q.GetGotra(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGotraView(v))
}
