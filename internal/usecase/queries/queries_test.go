//go:build unit

package queries_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"temple-booking/internal/domain/calendar"
	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/domain/seva"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/pkg/ptr"
	"temple-booking/internal/usecase/queries"
	"temple-booking/tests/common/builder"
	queriesmock "temple-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("row missing", nil, infra.KindNotFound)
}

// readOnly runs every WithinReadOnly callback against one mocked snapshot.
func readOnly(ctrl *gomock.Controller, bookings queries.SevaBookingReadStore, agg queries.AggregationReadStore) *queriesmock.MockReadOnlyUnit {
	snap := queriesmock.NewMockSnapshot(ctrl)
	snap.EXPECT().SevaBookings().Return(bookings).AnyTimes()
	snap.EXPECT().Aggregation().Return(agg).AnyTimes()

	unit := queriesmock.NewMockReadOnlyUnit(ctrl)
	unit.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, queries.Snapshot) error) error {
			return fn(ctx, snap)
		}).AnyTimes()
	return unit
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		skip, limit int
		want        queries.Page
		wantErr     error
	}{
		{name: "limit省略時は既定値", skip: 0, limit: 0, want: queries.Page{Offset: 0, Limit: 100}},
		{name: "上限を超えるlimitは丸める", skip: 10, limit: 500, want: queries.Page{Offset: 10, Limit: queries.MaxListLimit}},
		{name: "within bounds", skip: 5, limit: 20, want: queries.Page{Offset: 5, Limit: 20}},
		{name: "negative skip", skip: -1, limit: 20, wantErr: queries.ErrNegativeSkip},
		{name: "int32を超えるskipは拒否", skip: math.MaxInt32 + 1, limit: 10, wantErr: queries.ErrSkipTooLarge},
		{name: "largest representable skip", skip: math.MaxInt32, limit: 10, want: queries.Page{Offset: math.MaxInt32, Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := queries.NewPage(tt.skip, tt.limit, queries.DefaultHallListLimit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, errs.ErrValidation, errs.CategoryOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceQueries(t *testing.T) {
	t.Run("not found is reported as a hall lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockResourceReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := queries.NewResourceQueries(store).GetByID(context.Background(), id)

		require.ErrorIs(t, err, queries.ErrResourceNotFound)
		assert.Equal(t, errs.ErrNotFound, errs.CategoryOf(err))
	})

	t.Run("storage failures pass through unclassified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockResourceReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := queries.NewResourceQueries(store).GetByID(context.Background(), uuid.New())

		require.Error(t, err)
		assert.Equal(t, errs.ErrInternal, errs.CategoryOf(err))
	})

	t.Run("list applies the default page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockResourceReadStore(ctrl)
		view := builder.NewResourceBuilder().BuildViewQuery()
		store.EXPECT().List(gomock.Any(), queries.Page{Offset: 0, Limit: 100}).Return([]*queries.ResourceView{view}, nil)

		got, err := queries.NewResourceQueries(store).List(context.Background(), 0, 0)

		require.NoError(t, err)
		assert.Equal(t, []*queries.ResourceView{view}, got)
	})
}

func TestReservationQueries_List(t *testing.T) {
	t.Run("status is parsed case-insensitively", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		hallID := uuid.New()
		confirmed := reservation.StatusConfirmed
		store.EXPECT().
			List(gomock.Any(), queries.ReservationFilter{Status: &confirmed, ResourceID: &hallID}, queries.Page{Offset: 0, Limit: 100}).
			Return([]*queries.ReservationView{}, nil)

		_, err := queries.NewReservationQueries(store).List(context.Background(), ptr.Of(" Confirmed "), &hallID, 0, 0)

		require.NoError(t, err)
	})

	t.Run("未知のステータスはストアに届かない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)

		_, err := queries.NewReservationQueries(store).List(context.Background(), ptr.Of("archived"), nil, 0, 0)

		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestCalendarQueries(t *testing.T) {
	t.Run("month covers every day of the month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCalendarReadStore(ctrl)
		store.EXPECT().FindInWindow(gomock.Any(), gomock.Any(), nil, false).
			DoAndReturn(func(_ context.Context, w reservation.DateRange, _ *uuid.UUID, _ bool) ([]calendar.Entry, error) {
				assert.Equal(t, builder.Date(2024, time.February, 1), w.Start())
				assert.Equal(t, builder.Date(2024, time.February, 29), w.End())
				return nil, nil
			})

		view, err := queries.NewCalendarQueries(store).Month(context.Background(), 2024, 2, nil, false)

		require.NoError(t, err)
		assert.Zero(t, view.TotalCount)
	})

	t.Run("逆順の範囲はストアを呼ばない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCalendarReadStore(ctrl)

		_, err := queries.NewCalendarQueries(store).Week(context.Background(),
			builder.Date(2024, time.March, 10), builder.Date(2024, time.March, 1), nil, false)

		require.Error(t, err)
		assert.Equal(t, errs.ErrValidation, errs.CategoryOf(err))
	})
}

func TestSevaBookingQueries_List(t *testing.T) {
	t.Run("blank mobile number does not filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pool := queriesmock.NewMockSevaBookingReadStore(ctrl)
		snap := queriesmock.NewMockSevaBookingReadStore(ctrl)
		page := queries.Page{Offset: 0, Limit: queries.DefaultBookingListLimit}
		snap.EXPECT().List(gomock.Any(), queries.SevaBookingFilter{}, page).Return([]*queries.SevaBookingView{}, nil)
		snap.EXPECT().Count(gomock.Any(), queries.SevaBookingFilter{}).Return(int64(0), nil)

		got, err := queries.NewSevaBookingQueries(pool, readOnly(ctrl, snap, nil)).List(context.Background(),
			queries.SevaBookingFilter{MobileNo: ptr.Of("   ")}, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), got.TotalCount)
		assert.Empty(t, got.Items)
	})

	t.Run("件数と明細は同じスナップショットから読む", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// the pool-bound store must not serve either statement
		pool := queriesmock.NewMockSevaBookingReadStore(ctrl)
		snap := queriesmock.NewMockSevaBookingReadStore(ctrl)
		view := builder.NewSevaBookingBuilder().BuildViewQuery()
		filter := queries.SevaBookingFilter{MobileNo: ptr.Of("9876543210")}
		snap.EXPECT().List(gomock.Any(), filter, queries.Page{Offset: 20, Limit: 10}).Return([]*queries.SevaBookingView{view}, nil)
		snap.EXPECT().Count(gomock.Any(), filter).Return(int64(21), nil)

		got, err := queries.NewSevaBookingQueries(pool, readOnly(ctrl, snap, nil)).List(context.Background(),
			queries.SevaBookingFilter{MobileNo: ptr.Of(" 9876543210 ")}, 20, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(21), got.TotalCount)
		assert.Len(t, got.Items, 1)
	})

	t.Run("count failure fails the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snap := queriesmock.NewMockSevaBookingReadStore(ctrl)
		snap.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.SevaBookingView{}, nil)
		snap.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		got, err := queries.NewSevaBookingQueries(queriesmock.NewMockSevaBookingReadStore(ctrl), readOnly(ctrl, snap, nil)).
			List(context.Background(), queries.SevaBookingFilter{}, 0, 0)

		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestAggregationQueries(t *testing.T) {
	t.Run("unknown seva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snap := queriesmock.NewMockAggregationReadStore(ctrl)
		id := uuid.New()
		snap.EXPECT().FindSeva(gomock.Any(), id).Return(nil, notFound())

		_, err := queries.NewAggregationQueries(queriesmock.NewMockAggregationReadStore(ctrl), readOnly(ctrl, nil, snap)).
			ByService(context.Background(), id, seva.DateFilter{})

		require.ErrorIs(t, err, queries.ErrSevaNotFound)
		assert.Equal(t, errs.ErrNotFound, errs.CategoryOf(err))
	})

	t.Run("by service reads the seva and its lines in one snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		snap := queriesmock.NewMockAggregationReadStore(ctrl)
		s := seva.ReconstructSeva(uuid.New(), "Archana", ptr.Of(seva.Money(5000)))
		line := seva.Line{SevaID: s.ID(), SevaName: "Archana", SevaAmount: ptr.Of(seva.Money(5000)), SevaDate: builder.Date(2024, time.January, 5)}
		gomock.InOrder(
			snap.EXPECT().FindSeva(gomock.Any(), s.ID()).Return(s, nil),
			snap.EXPECT().FindLines(gomock.Any(), []uuid.UUID{s.ID()}, seva.DateFilter{}).Return([]seva.Line{line, line}, nil),
		)

		got, err := queries.NewAggregationQueries(queriesmock.NewMockAggregationReadStore(ctrl), readOnly(ctrl, nil, snap)).
			ByService(context.Background(), s.ID(), seva.DateFilter{})

		require.NoError(t, err)
		assert.Equal(t, 2, got.Count)
		assert.Equal(t, seva.Money(10000), got.TotalAmount)
	})

	t.Run("selection is deduplicated before loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAggregationReadStore(ctrl)
		a, b := uuid.New(), uuid.New()
		store.EXPECT().FindLines(gomock.Any(), []uuid.UUID{a, b}, seva.DateFilter{}).Return(nil, nil)

		sel, err := queries.NewAggregationQueries(store, nil).BySelection(context.Background(), []uuid.UUID{a, b, a}, seva.DateFilter{})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, sel.SevaIDs)
		assert.Zero(t, sel.TotalCount)
	})

	t.Run("空の選択はエラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAggregationReadStore(ctrl)

		_, err := queries.NewAggregationQueries(store, nil).BySelection(context.Background(), nil, seva.DateFilter{})

		require.ErrorIs(t, err, seva.ErrEmptySelection)
	})
}
