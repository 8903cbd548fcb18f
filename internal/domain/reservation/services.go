package reservation

import (
	"time"

	"temple-booking/internal/pkg/clock"
)

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

func (s *Services) Now() time.Time {
	return s.Clock.Now()
}

// Today is the current business day.
func (s *Services) Today() time.Time {
	return clock.Today(s.Clock, s.Location)
}
