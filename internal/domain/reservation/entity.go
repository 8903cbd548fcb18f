package reservation

import (
	"time"

	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPastStartDate = errs.Validation("start date cannot be in the past")

type NewReservationParams struct {
	ResourceID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	Purpose       *string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     string
	EndTime       string
	// Zero value means confirmed.
	Status Status
}

type Reservation struct {
	id         uuid.UUID
	resourceID uuid.UUID
	customer   Customer
	purpose    *string
	dates      DateRange
	times      TimeRange
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(services *Services, p NewReservationParams) (*Reservation, error) {
	customer, err := NewCustomer(p.CustomerName, p.CustomerPhone)
	if err != nil {
		return nil, err
	}
	purpose, err := NewPurpose(p.Purpose)
	if err != nil {
		return nil, err
	}

	dates, err := NewDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	if dates.Start().Before(services.Today()) {
		return nil, ErrPastStartDate
	}

	times, err := NewTimeRange(p.StartTime, p.EndTime)
	if err != nil {
		return nil, err
	}
	if _, err := NewSlot(dates, times); err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = StatusConfirmed
	}
	if status != StatusPending && status != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}

	now := services.Now()
	return &Reservation{
		id:         uuid.New(),
		resourceID: p.ResourceID,
		customer:   customer,
		purpose:    purpose,
		dates:      dates,
		times:      times,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, resourceID uuid.UUID,
	customer Customer,
	purpose *string,
	dates DateRange,
	times TimeRange,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		customer:   customer,
		purpose:    purpose,
		dates:      dates,
		times:      times,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo applies a status change. Requesting the current status of a
// live reservation is a no-op and reports changed=false.
func (r *Reservation) TransitionTo(to Status, now time.Time) (changed bool, err error) {
	if !to.IsValid() {
		return false, errs.Wrapf(ErrInvalidStatus, "%q", to)
	}
	if r.status.IsTerminal() {
		return false, errs.Wrapf(ErrIllegalTransition, "%s is terminal", r.status)
	}
	if to == r.status {
		return false, nil
	}
	if !CanTransition(r.status, to) {
		return false, errs.Wrapf(ErrIllegalTransition, "%s -> %s", r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return true, nil
}

func (r *Reservation) Slot() (Slot, error) {
	return NewSlot(r.dates, r.times)
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) Customer() Customer    { return r.customer }
func (r *Reservation) Purpose() *string      { return r.purpose }
func (r *Reservation) Dates() DateRange      { return r.dates }
func (r *Reservation) Times() TimeRange      { return r.times }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
