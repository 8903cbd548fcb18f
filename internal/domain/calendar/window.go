package calendar

import (
	"time"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
)

const (
	MaxWeekSpanDays = 31
	MinYear         = 2000
	MaxYear         = 2100
)

var (
	ErrWindowEndBeforeStart = errs.Validation("calendar end date must not be before start date")
	ErrWindowTooWide        = errs.Validation("calendar range cannot exceed 31 days")
	ErrInvalidYear          = errs.Validation("year must be between 2000 and 2100")
	ErrInvalidMonth         = errs.Validation("month must be between 1 and 12")
)

type Kind string

const (
	KindDay   Kind = "day"
	KindWeek  Kind = "week"
	KindMonth Kind = "month"
)

// Window is a closed range of calendar days a view is built for.
type Window struct {
	kind  Kind
	dates reservation.DateRange
}

func Day(date time.Time) Window {
	return Window{kind: KindDay, dates: reservation.SingleDay(date)}
}

func Week(start, end time.Time) (Window, error) {
	s, e := clock.DateOf(start), clock.DateOf(end)
	if e.Before(s) {
		return Window{}, errs.Wrapf(ErrWindowEndBeforeStart, "%s..%s", s.Format(time.DateOnly), e.Format(time.DateOnly))
	}
	dates, err := reservation.NewDateRange(s, e)
	if err != nil {
		return Window{}, err
	}
	if dates.SpanDays() > MaxWeekSpanDays {
		return Window{}, errs.Wrapf(ErrWindowTooWide, "%d days", dates.SpanDays())
	}
	return Window{kind: KindWeek, dates: dates}, nil
}

func Month(year, month int) (Window, error) {
	if year < MinYear || year > MaxYear {
		return Window{}, ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return Window{}, ErrInvalidMonth
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	dates, err := reservation.NewDateRange(first, last)
	if err != nil {
		return Window{}, err
	}
	return Window{kind: KindMonth, dates: dates}, nil
}

func (w Window) Kind() Kind                   { return w.kind }
func (w Window) Dates() reservation.DateRange { return w.dates }
func (w Window) Start() time.Time             { return w.dates.Start() }
func (w Window) End() time.Time               { return w.dates.End() }
