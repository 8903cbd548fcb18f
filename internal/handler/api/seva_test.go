//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/handler/api"
	"temple-booking/internal/usecase/queries"
	"temple-booking/tests/common/httptest"
	queriesmock "temple-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SevaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSevaQueries
}

func (s *SevaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSevaQueries(s.mockCtrl)
	h := api.NewSevaHandler(s.mockQueries)

	s.router.GET("/sevas", h.ListSevas)
	s.router.GET("/sevas/:id", h.GetSeva)
	s.router.GET("/gotras", h.ListGotras)
	s.router.GET("/gotras/:id", h.GetGotra)
}

func (s *SevaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSevaHandlerSuite(t *testing.T) {
	suite.Run(t, new(SevaHandlerTestSuite))
}

func (s *SevaHandlerTestSuite) TestListSevas() {
	archana := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	annadanam := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	amount := seva.Money(5000)

	s.Run("success: amounts render in rupees and unpriced sevas as null", func() {
		s.mockQueries.EXPECT().ListSevas(gomock.Any()).Return([]*queries.SevaView{
			{ID: archana, Name: "Archana", Amount: &amount},
			{ID: annadanam, Name: "Annadanam"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sevas", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[
			{"id":"11111111-1111-1111-1111-111111111111","name":"Archana","amount":50.00},
			{"id":"22222222-2222-2222-2222-222222222222","name":"Annadanam","amount":null}
		]`, rec.Body.String())
	})

	s.Run("success: セヴァが未登録なら空配列", func() {
		s.mockQueries.EXPECT().ListSevas(gomock.Any()).Return([]*queries.SevaView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sevas", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *SevaHandlerTestSuite) TestGetSeva() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetSeva(gomock.Any(), id).Return(&queries.SevaView{ID: id, Name: "Abhishekam"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sevas/"+id.String(), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"name":"Abhishekam"`)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetSeva(gomock.Any(), id).Return(nil, queries.ErrSevaNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sevas/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "seva not found")
	})

	s.Run("error: invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sevas/archana", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *SevaHandlerTestSuite) TestGotras() {
	id := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	s.Run("success: list", func() {
		s.mockQueries.EXPECT().ListGotras(gomock.Any()).Return([]*queries.GotraView{{ID: id, Name: "Bharadwaja"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gotras", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[{"id":"33333333-3333-3333-3333-333333333333","name":"Bharadwaja"}]`, rec.Body.String())
	})

	s.Run("success: get", func() {
		s.mockQueries.EXPECT().GetGotra(gomock.Any(), id).Return(&queries.GotraView{ID: id, Name: "Bharadwaja"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gotras/"+id.String(), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 存在しないゴートラは404", func() {
		s.mockQueries.EXPECT().GetGotra(gomock.Any(), id).Return(nil, queries.ErrGotraNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gotras/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "gotra not found")
	})
}
