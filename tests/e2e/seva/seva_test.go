//go:build e2e

package seva_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/handler/dto/request"
	"temple-booking/internal/handler/dto/response"
	"temple-booking/internal/pkg/ptr"
	"temple-booking/tests/common/builder"
	"temple-booking/tests/common/dbtest"
	"temple-booking/tests/common/httptest"
	"temple-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	sevasURL        = "/api/sevas"
	gotrasURL       = "/api/gotras"
	sevaBookingsURL = "/api/seva-bookings"
	sevaBookingURL  = "/api/seva-bookings/%s"
	byServiceURL    = "/api/seva-bookings/aggregation/by-seva?seva_id=%s"
	byDateURL       = "/api/seva-bookings/aggregation/by-date"
	selectionURL    = "/api/seva-bookings/aggregation/selection"
)

type SevaSuite struct {
	e2e.SharedSuite
}

func (s *SevaSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSevaSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SevaSuite))
}

func futureDay(days int) time.Time {
	now := time.Now().In(builder.Kolkata())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func (s *SevaSuite) book(t *testing.T, sevaID uuid.UUID, day time.Time, mutate func(*request.CreateSevaBookingRequest)) response.SevaBookingResponse {
	t.Helper()

	req := request.CreateSevaBookingRequest{
		SevaID:   sevaID,
		SevaDate: day.Format(time.DateOnly),
		Name:     "Ramesh Sharma",
		MobileNo: "9876543210",
	}
	if mutate != nil {
		mutate(&req)
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, sevaBookingsURL, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.SevaBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

// =============================================================================
// TestCatalog - seva and gotra master data
// =============================================================================

func (s *SevaSuite) TestCatalog() {
	s.Run("正常系: 一覧は名前順で金額なしはnull", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, sevasURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got []response.SevaResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		byName := make(map[string]*seva.Money, len(got))
		names := make([]string, len(got))
		for i, sv := range got {
			byName[sv.Name] = sv.Amount
			names[i] = sv.Name
		}
		require.IsNonDecreasing(t, names)
		require.Equal(t, seva.Money(5000), *byName["Archana"])
		require.Nil(t, byName["Annadanam"])
	})

	s.Run("異常系: 存在しないゴートラは404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, gotrasURL+"/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})
}

// =============================================================================
// TestSevaBooking - booking lifecycle
// =============================================================================

func (s *SevaSuite) TestSevaBooking() {
	s.Run("正常系: ゴートラ付きで予約し取得できる", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		kashyapa := dbtest.GotraIDByName(t, s.DB, "Kashyapa")
		day := futureDay(7)

		created := s.book(t, archana, day, func(r *request.CreateSevaBookingRequest) {
			r.GotraID = &kashyapa
			r.Address = ptr.Of("12 Temple Street")
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sevaBookingURL, created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.SevaBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		amount := seva.Money(5000)
		expected := &response.SevaBookingResponse{
			ID:         created.ID,
			SevaID:     archana,
			SevaName:   "Archana",
			SevaAmount: &amount,
			SevaDate:   day.Format(time.DateOnly),
			Name:       "Ramesh Sharma",
			MobileNo:   "9876543210",
			GotraID:    &kashyapa,
			GotraName:  ptr.Of("Kashyapa"),
			Address:    ptr.Of("12 Temple Street"),
			Status:     "confirmed",
		}
		opts := cmpopts.IgnoreFields(response.SevaBookingResponse{}, "ReceiptDate", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, &got, opts); diff != "" {
			t.Errorf("seva booking mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("異常系: 存在しないゴートラは404", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		unknown := uuid.New()
		req := request.CreateSevaBookingRequest{
			SevaID:   archana,
			SevaDate: futureDay(7).Format(time.DateOnly),
			Name:     "Ramesh Sharma",
			MobileNo: "9876543210",
			GotraID:  &unknown,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sevaBookingsURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})

	s.Run("異常系: 過去のセヴァ日は400", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		req := request.CreateSevaBookingRequest{
			SevaID:   archana,
			SevaDate: futureDay(-1).Format(time.DateOnly),
			Name:     "Ramesh Sharma",
			MobileNo: "9876543210",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sevaBookingsURL, req)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "today or a future date")
	})

	s.Run("正常系: 携帯番号とセヴァ日で絞り込める", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		day := futureDay(7)
		want := s.book(t, archana, day, nil)
		s.book(t, archana, day, func(r *request.CreateSevaBookingRequest) { r.MobileNo = "9123456780" })
		s.book(t, archana, futureDay(8), nil)

		url := fmt.Sprintf("%s?mobile_no=9876543210&seva_date=%s", sevaBookingsURL, day.Format(time.DateOnly))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page response.SevaBookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Equal(t, int64(1), page.TotalCount)
		require.Len(t, page.Items, 1)
		require.Equal(t, want.ID, page.Items[0].ID)
	})

	s.Run("正常系: 部分更新で備考を消せる", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		created := s.book(t, archana, futureDay(7), func(r *request.CreateSevaBookingRequest) {
			r.Remarks = ptr.Of("Morning slot")
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(sevaBookingURL, created.ID),
			map[string]any{"name": "Ramesh K Sharma", "remarks": ""})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.SevaBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "Ramesh K Sharma", got.Name)
		require.Nil(t, got.Remarks)
		require.Equal(t, "9876543210", got.MobileNo)
	})

	s.Run("正常系: 空のgotra_idでゴートラを外せる", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		kashyapa := dbtest.GotraIDByName(t, s.DB, "Kashyapa")
		created := s.book(t, archana, futureDay(7), func(r *request.CreateSevaBookingRequest) {
			r.GotraID = &kashyapa
		})
		require.NotNil(t, created.GotraID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(sevaBookingURL, created.ID),
			map[string]any{"gotra_id": ""})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.SevaBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Nil(t, got.GotraID)
		require.Nil(t, got.GotraName)
	})

	s.Run("正常系: ステータスをキャンセルに変更できる", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		created := s.book(t, archana, futureDay(7), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(sevaBookingURL, created.ID)+"/status",
			map[string]string{"status": "cancelled"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.SevaBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "cancelled", got.Status)
	})
}

// =============================================================================
// TestAggregation - reports over seva bookings
// =============================================================================

func (s *SevaSuite) TestAggregation() {
	s.Run("正常系: セヴァ別の件数と合計", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		abhishekam := dbtest.SevaIDByName(t, s.DB, "Abhishekam")
		s.book(t, archana, futureDay(3), nil)
		s.book(t, archana, futureDay(4), nil)
		s.book(t, abhishekam, futureDay(3), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(byServiceURL, archana), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.ServiceSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "Archana", got.SevaName)
		require.Equal(t, 2, got.Count)
		require.Equal(t, seva.Money(10000), got.TotalAmount)
		require.Len(t, got.Bookings, 2)
	})

	s.Run("正常系: 金額なしのセヴァは件数のみ数える", func() {
		t := s.T()

		annadanam := dbtest.SevaIDByName(t, s.DB, "Annadanam")
		s.book(t, annadanam, futureDay(3), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(byServiceURL, annadanam), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.ServiceSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, 1, got.Count)
		require.Equal(t, seva.Money(0), got.TotalAmount)
		require.Nil(t, got.SevaAmount)
	})

	s.Run("正常系: 日付別は昇順で期間で絞り込める", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		abhishekam := dbtest.SevaIDByName(t, s.DB, "Abhishekam")
		s.book(t, archana, futureDay(5), nil)
		s.book(t, abhishekam, futureDay(3), nil)
		s.book(t, archana, futureDay(3), nil)
		s.book(t, archana, futureDay(9), nil)

		url := fmt.Sprintf("%s?start_date=%s&end_date=%s", byDateURL,
			futureDay(3).Format(time.DateOnly), futureDay(5).Format(time.DateOnly))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp response.DateAggregationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
		require.Equal(t, response.FiltersResponse{
			StartDate: ptr.Of(futureDay(3).Format(time.DateOnly)),
			EndDate:   ptr.Of(futureDay(5).Format(time.DateOnly)),
		}, resp.Filters)

		got := resp.Data
		require.Len(t, got, 2)

		require.Equal(t, futureDay(3).Format(time.DateOnly), got[0].Date)
		require.Equal(t, 2, got[0].Count)
		require.Equal(t, seva.Money(15000), got[0].TotalAmount)
		require.Len(t, got[0].Services, 2)

		require.Equal(t, futureDay(5).Format(time.DateOnly), got[1].Date)
		require.Equal(t, 1, got[1].Count)
	})

	s.Run("正常系: 選択したセヴァの合計", func() {
		t := s.T()

		archana := dbtest.SevaIDByName(t, s.DB, "Archana")
		sahasranama := dbtest.SevaIDByName(t, s.DB, "Sahasranama Archana")
		abhishekam := dbtest.SevaIDByName(t, s.DB, "Abhishekam")
		s.book(t, archana, futureDay(3), nil)
		s.book(t, sahasranama, futureDay(4), nil)
		s.book(t, abhishekam, futureDay(4), nil)

		body := map[string]any{"seva_ids": []uuid.UUID{archana, sahasranama}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, selectionURL, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.SelectionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, 2, got.TotalCount)
		require.Equal(t, seva.Money(30000), got.TotalAmount)
		require.Len(t, got.BySeva, 2)
		require.Len(t, got.ByDate, 2)
	})

	s.Run("異常系: seva_idsが空なら400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, selectionURL, map[string]any{"seva_ids": []uuid.UUID{}})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "seva_ids list is required")
	})
}
