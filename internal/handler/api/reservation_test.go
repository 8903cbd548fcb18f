//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/handler/api"
	reqdto "temple-booking/internal/handler/dto/request"
	resdto "temple-booking/internal/handler/dto/response"
	"temple-booking/internal/handler/validation"
	"temple-booking/internal/usecase/commands"
	"temple-booking/internal/usecase/queries"
	"temple-booking/tests/common/builder"
	"temple-booking/tests/common/httptest"
	"temple-booking/tests/common/testutil"
	commandsmock "temple-booking/tests/mock/commands"
	queriesmock "temple-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/hall-bookings", s.handler.Create)
	s.router.GET("/hall-bookings", s.handler.List)
	s.router.GET("/hall-bookings/:id", s.handler.Get)
	s.router.PATCH("/hall-bookings/:id", s.handler.UpdateStatus)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/hall-bookings"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()
	expectedResult := &commands.CreateReservationResult{ReservationID: b.ID}

	validationCases := []testCase{
		{name: "customer_name length OK (100 chars)", mutate: testutil.Field("customer_name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "customer_name length invalid (101 chars)", mutate: testutil.Field("customer_name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "phone boundary OK (10 chars)", mutate: testutil.Field("customer_phone", "9876543210"), expectCode: http.StatusCreated},
		{name: "phone too short (9 chars)", mutate: testutil.Field("customer_phone", "987654321"), expectCode: http.StatusBadRequest},
		{name: "phone too long (16 chars)", mutate: testutil.Field("customer_phone", "9876543210123456"), expectCode: http.StatusBadRequest},
		{name: "event_purpose length invalid (501 chars)", mutate: testutil.Field("event_purpose", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		{name: "目的は省略できる", mutate: testutil.Field("event_purpose", nil), expectCode: http.StatusCreated},
		{name: "1桁の時刻も受け付ける", mutate: testutil.Field("start_time", "9:30"), expectCode: http.StatusCreated},
		{name: "hour out of range", mutate: testutil.Field("start_time", "24:00"), expectCode: http.StatusBadRequest},
		{name: "minute out of range", mutate: testutil.Field("end_time", "12:60"), expectCode: http.StatusBadRequest},
		{name: "time without colon", mutate: testutil.Field("end_time", "1200"), expectCode: http.StatusBadRequest},
		{name: "start_date with wrong layout", mutate: testutil.Field("start_date", "05-01-2024"), expectCode: http.StatusBadRequest},
		{name: "end_date impossible day", mutate: testutil.Field("end_date", "2024-02-30"), expectCode: http.StatusBadRequest},
		{name: "missing field: resource_id (required)", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "resource_id is not a uuid", mutate: testutil.Field("resource_id", "hall-1"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("2024-01-05", body.StartDate)
		s.Equal("10:00", body.StartTime)
		s.Equal("confirmed", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/hall-bookings/" + b.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expectedResult, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "overlapping confirmed booking",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "hall not found",
				commandsError:  queries.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "hall not found",
			},
			{
				name:           "過去の開始日",
				commandsError:  reservation.ErrPastStartDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "start date cannot be in the past",
			},
			{
				name:           "end before start",
				commandsError:  reservation.ErrInvalidSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "end must be after start",
			},
			{
				name:           "cancelled as initial status",
				commandsError:  reservation.ErrInvalidInitialStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "pending or confirmed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	b := builder.NewReservationBuilder()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hall-bookings/"+b.ID.String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ResourceName, body.ResourceName)
		s.Require().NotNil(body.EventPurpose)
		s.Equal("Wedding reception", *body.EventPurpose)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hall-bookings/"+b.ID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "hall booking not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hall-bookings/xyz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	hallID := uuid.New()
	status := "pending"

	testCases := []struct {
		name       string
		url        string
		status     *string
		resourceID *uuid.UUID
		skip       int
		limit      int
	}{
		{name: "絞り込みなし", url: "/hall-bookings"},
		{name: "status filter", url: "/hall-bookings?status=pending", status: &status},
		{name: "hall filter with paging", url: "/hall-bookings?resource_id=" + hallID.String() + "&skip=5&limit=20", resourceID: &hallID, skip: 5, limit: 20},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().List(gomock.Any(), tc.status, tc.resourceID, tc.skip, tc.limit).
				Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildViewQuery()}, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)

			var body []resdto.ReservationResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Len(body, 1)
		})
	}

	s.Run("error: resource_id is not a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hall-bookings?resource_id=hall-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown status is rejected by the usecase", func() {
		bogus := "archived"
		s.mockQueries.EXPECT().List(gomock.Any(), &bogus, nil, 0, 0).Return(nil, reservation.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hall-bookings?status=archived", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid reservation status")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewReservationBuilder()
	url := "/hall-bookings/" + b.ID.String()
	reqBody := reqdto.UpdateReservationStatusRequest{Status: "cancelled"}

	s.Run("success: returns 200 OK with the new status", func() {
		cancelled := b.BuildViewQuery()
		cancelled.Status = "cancelled"
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(cancelled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: status is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "キャンセル済みからは遷移できない", commandsError: reservation.ErrIllegalTransition, expectedStatus: http.StatusBadRequest},
			{name: "confirming into a clash", commandsError: commands.ErrReservationConflict, expectedStatus: http.StatusConflict},
			{name: "booking not found", commandsError: queries.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
			{name: "internal", commandsError: errors.New("tx aborted"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, reqBody).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
