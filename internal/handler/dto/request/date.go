package request

import (
	"time"

	"temple-booking/internal/handler/validation"
	"temple-booking/internal/pkg/errs"
)

var ErrInvalidDate = errs.Validation("date must be formatted as YYYY-MM-DD")

// ParseDate reads a calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(validation.DateLayout, s)
	if err != nil {
		return time.Time{}, errs.WithCause(ErrInvalidDate, err)
	}
	return d, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
