//go:build unit

package reservation_test

import (
	"context"
	"errors"
	"testing"

	"temple-booking/internal/domain/reservation"
	"temple-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	byResource map[uuid.UUID][]reservation.StoredSlot
	err        error
	calls      int
}

func (f *fakeFinder) FindConfirmedInDateWindow(_ context.Context, resourceID uuid.UUID, window reservation.DateRange, excludeID *uuid.UUID) ([]reservation.StoredSlot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []reservation.StoredSlot
	for _, s := range f.byResource[resourceID] {
		dates, err := reservation.NewDateRange(s.StartDate, s.EndDate)
		if err != nil || !dates.Overlaps(window) {
			continue
		}
		if excludeID != nil && s.ReservationID == *excludeID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func TestConflictDetector(t *testing.T) {
	auditorium := uuid.New()
	annex := uuid.New()

	existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ResourceID = auditorium
	})

	tests := []struct {
		name      string
		stored    []reservation.StoredSlot
		resource  uuid.UUID
		start     string
		end       string
		exclude   func(id uuid.UUID) *uuid.UUID
		wantFound bool
	}{
		{
			name:      "10:00-12:00 と 11:00-13:00 は重複する",
			stored:    []reservation.StoredSlot{existing.BuildStoredSlot()},
			resource:  auditorium,
			start:     "11:00",
			end:       "13:00",
			wantFound: true,
		},
		{
			name:     "touching at the boundary is not a conflict",
			stored:   []reservation.StoredSlot{existing.BuildStoredSlot()},
			resource: auditorium,
			start:    "12:00",
			end:      "14:00",
		},
		{
			name:     "ending where the existing one starts",
			stored:   []reservation.StoredSlot{existing.BuildStoredSlot()},
			resource: auditorium,
			start:    "08:00",
			end:      "10:00",
		},
		{
			name:     "different hall never conflicts",
			stored:   []reservation.StoredSlot{existing.BuildStoredSlot()},
			resource: annex,
			start:    "10:00",
			end:      "12:00",
		},
		{
			name:     "excluding itself",
			stored:   []reservation.StoredSlot{existing.BuildStoredSlot()},
			resource: auditorium,
			start:    "10:00",
			end:      "12:00",
			exclude:  func(id uuid.UUID) *uuid.UUID { return &id },
		},
		{
			name: "malformed stored times are skipped",
			stored: []reservation.StoredSlot{
				builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
					b.ResourceID = auditorium
					b.StartTime = "10am"
				}).BuildStoredSlot(),
			},
			resource: auditorium,
			start:    "10:00",
			end:      "12:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := &fakeFinder{byResource: map[uuid.UUID][]reservation.StoredSlot{auditorium: tt.stored}}
			detector := reservation.NewConflictDetector(finder)

			times, err := reservation.NewTimeRange(tt.start, tt.end)
			require.NoError(t, err)

			var exclude *uuid.UUID
			if tt.exclude != nil {
				exclude = tt.exclude(existing.ID)
			}

			found, err := detector.DetectConflict(context.Background(), tt.resource, reservation.SingleDay(builder.Date(2024, 1, 5)), times, exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
		})
	}

	t.Run("multi-day stored reservation overlapping a later day", func(t *testing.T) {
		stored := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = auditorium
			b.StartDate, b.EndDate = builder.Date(2024, 1, 5), builder.Date(2024, 1, 7)
			b.StartTime, b.EndTime = "18:00", "09:00"
		}).BuildStoredSlot()
		finder := &fakeFinder{byResource: map[uuid.UUID][]reservation.StoredSlot{auditorium: {stored}}}
		detector := reservation.NewConflictDetector(finder)

		times, err := reservation.NewTimeRange("08:00", "10:00")
		require.NoError(t, err)

		id, found, err := detector.FindConflict(context.Background(), auditorium, reservation.SingleDay(builder.Date(2024, 1, 7)), times, nil)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored.ReservationID, id)

		times, err = reservation.NewTimeRange("09:00", "10:00")
		require.NoError(t, err)
		found, err = detector.DetectConflict(context.Background(), auditorium, reservation.SingleDay(builder.Date(2024, 1, 7)), times, nil)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("invalid candidate fails before querying", func(t *testing.T) {
		finder := &fakeFinder{}
		detector := reservation.NewConflictDetector(finder)

		times, err := reservation.NewTimeRange("12:00", "10:00")
		require.NoError(t, err)

		_, err = detector.DetectConflict(context.Background(), auditorium, reservation.SingleDay(builder.Date(2024, 1, 5)), times, nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidSlot)
		assert.Zero(t, finder.calls)
	})

	t.Run("finder error propagates", func(t *testing.T) {
		boom := errors.New("connection reset")
		detector := reservation.NewConflictDetector(&fakeFinder{err: boom})

		times, err := reservation.NewTimeRange("10:00", "12:00")
		require.NoError(t, err)

		_, err = detector.DetectConflict(context.Background(), auditorium, reservation.SingleDay(builder.Date(2024, 1, 5)), times, nil)
		assert.ErrorIs(t, err, boom)
	})
}
