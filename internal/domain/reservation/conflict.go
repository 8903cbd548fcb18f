package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoredSlot is a confirmed reservation as persisted. Its times are raw text
// and may be malformed in historical rows.
type StoredSlot struct {
	ReservationID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	StartTime     string
	EndTime       string
}

// ConflictFinder returns CONFIRMED reservations of a resource whose date range
// overlaps window, leaving out excludeID when set.
type ConflictFinder interface {
	FindConfirmedInDateWindow(ctx context.Context, resourceID uuid.UUID, window DateRange, excludeID *uuid.UUID) ([]StoredSlot, error)
}

type ConflictDetector struct {
	finder ConflictFinder
}

func NewConflictDetector(finder ConflictFinder) *ConflictDetector {
	return &ConflictDetector{finder: finder}
}

func (d *ConflictDetector) DetectConflict(
	ctx context.Context,
	resourceID uuid.UUID,
	dates DateRange,
	times TimeRange,
	excludeID *uuid.UUID,
) (bool, error) {
	_, found, err := d.FindConflict(ctx, resourceID, dates, times, excludeID)
	return found, err
}

// FindConflict returns the first stored reservation whose slot overlaps the candidate.
func (d *ConflictDetector) FindConflict(
	ctx context.Context,
	resourceID uuid.UUID,
	dates DateRange,
	times TimeRange,
	excludeID *uuid.UUID,
) (uuid.UUID, bool, error) {
	candidate, err := NewSlot(dates, times)
	if err != nil {
		return uuid.Nil, false, err
	}

	stored, err := d.finder.FindConfirmedInDateWindow(ctx, resourceID, dates, excludeID)
	if err != nil {
		return uuid.Nil, false, err
	}

	for _, s := range stored {
		if excludeID != nil && s.ReservationID == *excludeID {
			continue
		}
		existing, ok := s.slot()
		if !ok {
			continue
		}
		if candidate.Overlaps(existing) {
			return s.ReservationID, true, nil
		}
	}
	return uuid.Nil, false, nil
}

// slot rebuilds the stored instants; bad rows report ok=false instead of failing the check.
func (s StoredSlot) slot() (Slot, bool) {
	dates, err := NewDateRange(s.StartDate, s.EndDate)
	if err != nil {
		return Slot{}, false
	}
	times, err := NewTimeRange(s.StartTime, s.EndTime)
	if err != nil {
		return Slot{}, false
	}
	slot, err := NewSlot(dates, times)
	if err != nil {
		return Slot{}, false
	}
	return slot, true
}
