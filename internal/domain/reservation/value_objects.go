package reservation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
)

const (
	MaxCustomerNameLength = 100
	MinPhoneLength        = 10
	MaxPhoneLength        = 15
	MaxPurposeLength      = 500
)

var (
	ErrInvalidTimeOfDay    = errs.Validation("time of day must be HH:MM with hour 0-23 and minute 0-59")
	ErrInvalidDateRange    = errs.Validation("end date must not be before start date")
	ErrInvalidSlot         = errs.Validation("end must be after start")
	ErrEmptyCustomerName   = errs.Validation("customer name cannot be empty")
	ErrCustomerNameTooLong = errs.Validation("customer name is too long")
	ErrInvalidPhone        = errs.Validation("customer phone must be 10 to 15 characters")
	ErrPurposeTooLong      = errs.Validation("event purpose is too long")
)

var timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a wall-clock hour and minute, stored as HH:MM text.
type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, errs.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return TimeOfDay{hour: h, minute: mm}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On combines the time with a calendar day.
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, time.UTC)
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.hour*60+t.minute < o.hour*60+o.minute
}

// TimeRange pairs a start and end time of day. The end may precede the start
// when the reservation spans several days.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{start: s, end: e}, nil
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

// DateRange is a closed range of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := clock.DateOf(start), clock.DateOf(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func SingleDay(day time.Time) DateRange {
	d := clock.DateOf(day)
	return DateRange{start: d, end: d}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Overlaps is the date-only test: r.start <= o.end AND r.end >= o.start.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.start.After(o.end) && !r.end.Before(o.start)
}

// SpanDays is end minus start in whole days.
func (r DateRange) SpanDays() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Slot is the half-open interval [start, end) between two instants.
type Slot struct {
	start time.Time
	end   time.Time
}

func NewSlot(dates DateRange, times TimeRange) (Slot, error) {
	start := times.start.On(dates.start)
	end := times.end.On(dates.end)
	if !end.After(start) {
		return Slot{}, errs.Wrapf(ErrInvalidSlot, "%s %s -> %s %s",
			dates.start.Format(time.DateOnly), times.start, dates.end.Format(time.DateOnly), times.end)
	}
	return Slot{start: start, end: end}, nil
}

func (s Slot) Start() time.Time { return s.start }
func (s Slot) End() time.Time   { return s.end }

// Overlaps reports half-open overlap; slots that only touch do not overlap.
func (s Slot) Overlaps(o Slot) bool {
	return s.start.Before(o.end) && o.start.Before(s.end)
}

type Customer struct {
	name  string
	phone string
}

func NewCustomer(name, phone string) (Customer, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len([]rune(n)) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}
	p := strings.TrimSpace(phone)
	if l := len(p); l < MinPhoneLength || l > MaxPhoneLength {
		return Customer{}, ErrInvalidPhone
	}
	return Customer{name: n, phone: p}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }

func NewPurpose(p *string) (*string, error) {
	if p == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil, nil
	}
	if len([]rune(t)) > MaxPurposeLength {
		return nil, ErrPurposeTooLong
	}
	return &t, nil
}
