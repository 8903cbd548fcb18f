//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"temple-booking/internal/domain/reservation"
	reqdto "temple-booking/internal/handler/dto/request"
	"temple-booking/internal/infra"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/commands"
	"temple-booking/internal/usecase/queries"
	"temple-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationCommands(f *uowFixture) commands.ReservationCommands {
	return commands.NewReservationUseCase(f.uow, f.clock, builder.Kolkata())
}

func TestCreateReservation(t *testing.T) {
	hall := builder.NewResourceBuilder().BuildDomain()

	t.Run("空き枠なら作成してイベントを積む", func(t *testing.T) {
		f := newUowFixture(t)
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
		}).BuildCreateRequestDTO()
		newID := uuid.New()

		f.expectWithin()
		// the hall lock must be held before the overlap check and the insert
		gomock.InOrder(
			f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil),
			f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), hall.ID(), gomock.Any(), nil).Return(nil, nil),
			f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
					assert.Equal(t, reservation.StatusConfirmed, res.Status())
					assert.Equal(t, "10:00", res.Times().Start().String())
					return newID, nil
				}),
			f.notifications.EXPECT().
				CreateJob(gomock.Any(), gomock.Any(), "reservation", commands.TopicReservationCreated, gomock.Any(), builder.FixedNow).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, payload []byte, _ time.Time) error {
					var ev commands.ReservationEvent
					require.NoError(t, json.Unmarshal(payload, &ev))
					assert.Equal(t, hall.ID(), ev.ResourceID)
					assert.Equal(t, "confirmed", ev.Status)
					assert.Equal(t, "2024-01-05", ev.StartDate)
					assert.Nil(t, ev.PreviousStatus)
					return nil
				}),
		)

		got, err := newReservationCommands(f).Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, newID, got.ReservationID)
	})

	t.Run("Auditorium 10:00-12:00 と 11:00-13:00 は衝突する", func(t *testing.T) {
		f := newUowFixture(t)
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
		})
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
			b.StartTime = "11:00"
			b.EndTime = "13:00"
		}).BuildCreateRequestDTO()

		slot := existing.BuildStoredSlot()

		f.expectWithin()
		gomock.InOrder(
			f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil),
			f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), hall.ID(), gomock.Any(), nil).
				Return([]reservation.StoredSlot{slot}, nil),
		)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := newReservationCommands(f).Create(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
		assert.Equal(t, errs.ErrConflict, errs.CategoryOf(err))
		assert.Equal(t, "hall is already booked for the requested time slot", err.Error())
		assert.Contains(t, fmt.Sprintf("%+v", err), slot.ReservationID.String())
	})

	t.Run("境界で接する枠は衝突しない", func(t *testing.T) {
		f := newUowFixture(t)
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
		})
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
			b.StartTime = "12:00"
			b.EndTime = "14:00"
		}).BuildCreateRequestDTO()

		f.expectWithin()
		f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil)
		f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), hall.ID(), gomock.Any(), nil).
			Return([]reservation.StoredSlot{existing.BuildStoredSlot()}, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := newReservationCommands(f).Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("pending creation skips the conflict check", func(t *testing.T) {
		f := newUowFixture(t)
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
			b.Status = reservation.StatusPending
		}).BuildCreateRequestDTO()

		f.expectWithin()
		f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil)
		f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := newReservationCommands(f).Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("validation fails before the transaction", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			want   error
		}{
			{
				name: "過去日",
				mutate: func(b *builder.ReservationBuilder) {
					b.StartDate = builder.Date(2023, 12, 31)
					b.EndDate = b.StartDate
				},
				want: reservation.ErrPastStartDate,
			},
			{
				name: "end before start on the same day",
				mutate: func(b *builder.ReservationBuilder) {
					b.StartTime = "12:00"
					b.EndTime = "10:00"
				},
				want: reservation.ErrInvalidSlot,
			},
			{
				name:   "end date before start date",
				mutate: func(b *builder.ReservationBuilder) { b.EndDate = builder.Date(2024, 1, 4) },
				want:   reservation.ErrInvalidDateRange,
			},
			{
				name:   "cancelled is not an initial status",
				mutate: func(b *builder.ReservationBuilder) { b.Status = reservation.StatusCancelled },
				want:   reservation.ErrInvalidInitialStatus,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newUowFixture(t)
				req := builder.NewReservationBuilder().With(tt.mutate).BuildCreateRequestDTO()

				_, err := newReservationCommands(f).Create(context.Background(), req)
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, errs.ErrValidation, errs.CategoryOf(err))
			})
		}
	})

	t.Run("unknown hall is not found", func(t *testing.T) {
		f := newUowFixture(t)
		req := builder.NewReservationBuilder().BuildCreateRequestDTO()

		f.expectWithin()
		f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), req.ResourceID).Return(nil, repoErr(infra.KindNotFound))

		_, err := newReservationCommands(f).Create(context.Background(), req)
		assert.ErrorIs(t, err, queries.ErrResourceNotFound)
		assert.Equal(t, errs.ErrNotFound, errs.CategoryOf(err))
	})

	t.Run("exclusion constraint violation is a conflict", func(t *testing.T) {
		f := newUowFixture(t)
		req := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
		}).BuildCreateRequestDTO()

		f.expectWithin()
		f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil)
		f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, repoErr(infra.KindExclusionViolated))

		_, err := newReservationCommands(f).Create(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	hall := builder.NewResourceBuilder().BuildDomain()

	stored := func(status reservation.Status) *reservation.Reservation {
		return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = hall.ID()
			b.Status = status
		}).BuildStored()
	}

	t.Run("pending から confirmed は自分を除外して再チェックする", func(t *testing.T) {
		f := newUowFixture(t)
		res := stored(reservation.StatusPending)
		self := res.ID()
		other := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.StartTime = "14:00"
			b.EndTime = "16:00"
		})

		f.expectWithin()
		gomock.InOrder(
			f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), self).Return(res, nil),
			f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil),
			f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), hall.ID(), gomock.Any(), &self).
				Return([]reservation.StoredSlot{other.BuildStoredSlot()}, nil),
			f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res).Return(nil),
		)
		f.notifications.EXPECT().
			CreateJob(gomock.Any(), gomock.Any(), "reservation", commands.TopicReservationStatusChanged, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ string, payload []byte, _ time.Time) error {
				var ev commands.ReservationEvent
				require.NoError(t, json.Unmarshal(payload, &ev))
				require.NotNil(t, ev.PreviousStatus)
				assert.Equal(t, "pending", *ev.PreviousStatus)
				assert.Equal(t, "confirmed", ev.Status)
				return nil
			})

		err := newReservationCommands(f).UpdateStatus(context.Background(), self, reqdto.UpdateReservationStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("confirming into an overlap is a conflict", func(t *testing.T) {
		f := newUowFixture(t)
		res := stored(reservation.StatusPending)
		clash := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.StartTime = "11:00"
			b.EndTime = "13:00"
		})

		f.expectWithin()
		f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		f.resources.EXPECT().LockByID(gomock.Any(), gomock.Any(), hall.ID()).Return(hall, nil)
		f.reads.EXPECT().FindConfirmedInDateWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reservation.StoredSlot{clash.BuildStoredSlot()}, nil)

		err := newReservationCommands(f).UpdateStatus(context.Background(), res.ID(), reqdto.UpdateReservationStatusRequest{Status: "CONFIRMED"})
		assert.ErrorIs(t, err, commands.ErrReservationConflict)
	})

	t.Run("cancelling does not re-check conflicts", func(t *testing.T) {
		f := newUowFixture(t)
		res := stored(reservation.StatusConfirmed)

		f.expectWithin()
		f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res).Return(nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), commands.TopicReservationStatusChanged, gomock.Any(), gomock.Any()).Return(nil)

		err := newReservationCommands(f).UpdateStatus(context.Background(), res.ID(), reqdto.UpdateReservationStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newUowFixture(t)
		res := stored(reservation.StatusConfirmed)

		f.expectWithin()
		f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := newReservationCommands(f).UpdateStatus(context.Background(), res.ID(), reqdto.UpdateReservationStatusRequest{Status: "confirmed"})
		assert.NoError(t, err)
	})

	t.Run("cancelled は終端状態", func(t *testing.T) {
		f := newUowFixture(t)
		res := stored(reservation.StatusCancelled)

		f.expectWithin()
		f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		err := newReservationCommands(f).UpdateStatus(context.Background(), res.ID(), reqdto.UpdateReservationStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, reservation.ErrIllegalTransition)
		assert.Equal(t, errs.ErrValidation, errs.CategoryOf(err))
	})

	t.Run("unknown status value", func(t *testing.T) {
		f := newUowFixture(t)

		err := newReservationCommands(f).UpdateStatus(context.Background(), uuid.New(), reqdto.UpdateReservationStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("missing booking is not found", func(t *testing.T) {
		f := newUowFixture(t)
		id := uuid.New()

		f.expectWithin()
		f.reservations.EXPECT().LockByID(gomock.Any(), gomock.Any(), id).Return(nil, repoErr(infra.KindNotFound))

		err := newReservationCommands(f).UpdateStatus(context.Background(), id, reqdto.UpdateReservationStatusRequest{Status: "cancelled"})
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}
