package calendar

import (
	"sort"
	"time"

	"temple-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Entry is a stored reservation as shown on a calendar.
type Entry struct {
	ReservationID uuid.UUID
	ResourceID    uuid.UUID
	ResourceName  string
	CustomerName  string
	CustomerPhone string
	Purpose       *string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     string
	EndTime       string
	Status        reservation.Status
}

type View struct {
	Window     Window
	Entries    []Entry
	TotalCount int
}

// Project keeps the entries overlapping w, drops cancelled ones unless
// includeCancelled, and orders them for the window kind.
func Project(w Window, entries []Entry, includeCancelled bool) View {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !includeCancelled && e.Status == reservation.StatusCancelled {
			continue
		}
		dates, err := reservation.NewDateRange(e.StartDate, e.EndDate)
		if err != nil || !dates.Overlaps(w.dates) {
			continue
		}
		out = append(out, e)
	}

	byDate := w.kind != KindDay
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if byDate && !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		return startMinutes(a) < startMinutes(b)
	})

	return View{Window: w, Entries: out, TotalCount: len(out)}
}

// unparseable times sort last
func startMinutes(e Entry) int {
	t, err := reservation.ParseTimeOfDay(e.StartTime)
	if err != nil {
		return 24 * 60
	}
	return t.Hour()*60 + t.Minute()
}
