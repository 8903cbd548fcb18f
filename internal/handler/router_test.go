//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/handler"
	"temple-booking/internal/handler/api"
	"temple-booking/internal/handler/middleware"
	"temple-booking/internal/pkg/config"
	"temple-booking/internal/usecase/queries"
	"temple-booking/tests/common/httptest"
	commandsmock "temple-booking/tests/mock/commands"
	queriesmock "temple-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	sevaBookings *queriesmock.MockSevaBookingQueries
	aggregation  *queriesmock.MockAggregationQueries
}

func newTestRouter(t *testing.T) (*gin.Engine, routerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := routerMocks{
		sevaBookings: queriesmock.NewMockSevaBookingQueries(ctrl),
		aggregation:  queriesmock.NewMockAggregationQueries(ctrl),
	}
	h := handler.Handlers{
		Resource:    api.NewResourceHandler(commandsmock.NewMockResourceCommands(ctrl), queriesmock.NewMockResourceQueries(ctrl)),
		Reservation: api.NewReservationHandler(commandsmock.NewMockReservationCommands(ctrl), queriesmock.NewMockReservationQueries(ctrl)),
		Calendar:    api.NewCalendarHandler(queriesmock.NewMockCalendarQueries(ctrl)),
		Seva:        api.NewSevaHandler(queriesmock.NewMockSevaQueries(ctrl)),
		SevaBooking: api.NewSevaBookingHandler(commandsmock.NewMockSevaBookingCommands(ctrl), m.sevaBookings),
		Aggregation: api.NewAggregationHandler(m.aggregation),
	}

	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), nil, h)
	return engine, m
}

func TestRouter_Health(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Service is healthy"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_AggregationIsNotShadowedByBookingID(t *testing.T) {
	engine, m := newTestRouter(t)

	m.aggregation.EXPECT().ByDate(gomock.Any(), seva.DateFilter{}).Return([]seva.DateEntry{}, nil).Times(1)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/seva-bookings/aggregation/by-date", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"filters":{"start_date":null,"end_date":null},"data":[]}`, rec.Body.String())
}

func TestRouter_SevaBookingByID(t *testing.T) {
	engine, m := newTestRouter(t)
	id := uuid.New()

	m.sevaBookings.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrSevaBookingNotFound).Times(1)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/seva-bookings/"+id.String(), nil)

	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "seva booking not found")
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/api/pujas", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
