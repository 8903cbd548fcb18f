//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

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

type ResourceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockResourceCommands
	mockQueries  *queriesmock.MockResourceQueries
	handler      *api.ResourceHandler
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/halls", s.handler.Create)
	s.router.GET("/halls", s.handler.List)
	s.router.GET("/halls/:id", s.handler.Get)
	s.router.PUT("/halls/:id", s.handler.Update)
	s.router.DELETE("/halls/:id", s.handler.Delete)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ResourceHandlerTestSuite) TestCreate() {
	url := "/halls"

	b := builder.NewResourceBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()
	expectedResult := &commands.CreateResourceResult{ResourceID: b.ID}

	validationCases := []testCase{
		{name: "name length OK (200 chars)", mutate: testutil.Field("name", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "name length invalid (201 chars)", mutate: testutil.Field("name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "capacity boundary OK (1)", mutate: testutil.Field("capacity", 1), expectCode: http.StatusCreated},
		{name: "capacity boundary invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		{name: "negative capacity", mutate: testutil.Field("capacity", -5), expectCode: http.StatusBadRequest},
		{name: "設備は省略できる", mutate: testutil.Field("facilities", nil), expectCode: http.StatusCreated},
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil), expectCode: http.StatusBadRequest},
		{name: "capacity is not a number", mutate: testutil.Field("capacity", "many"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored hall", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("Auditorium", body.Name)
		s.Equal(int32(300), body.Capacity)
		s.Equal([]string{"Stage", "Sound system"}, body.Facilities)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/halls/" + b.ID.String()})
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
				name:           "duplicate name",
				commandsError:  commands.ErrResourceNameTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
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

func (s *ResourceHandlerTestSuite) TestGet() {
	b := builder.NewResourceBuilder()
	url := "/halls/" + b.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing hall", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "hall not found")
	})
}

func (s *ResourceHandlerTestSuite) TestList() {
	s.Run("success: passes paging through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 20, 10).
			Return([]*queries.ResourceView{builder.NewResourceBuilder().BuildViewQuery()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls?skip=20&limit=10", nil)

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), 0, 0).Return([]*queries.ResourceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 負のskipは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/halls?skip=-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ResourceHandlerTestSuite) TestUpdate() {
	b := builder.NewResourceBuilder()
	url := "/halls/" + b.ID.String()
	name := "Kalyana Mandapam"
	reqBody := reqdto.UpdateResourceRequest{Name: &name}

	s.Run("success: returns 200 OK with the updated hall", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, reqBody).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: explicit zero capacity is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"capacity": 0})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "hall not found", commandsError: queries.ErrResourceNotFound, expectedStatus: http.StatusNotFound},
			{name: "name taken", commandsError: commands.ErrResourceNameTaken, expectedStatus: http.StatusConflict},
			{name: "internal", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), b.ID, reqBody).Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ResourceHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/halls/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 予約が残っているホールは削除できない", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrResourceInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be deleted")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/halls/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
