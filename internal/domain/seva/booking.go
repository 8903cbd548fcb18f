package seva

import (
	"strings"
	"time"

	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength    = 200
	MinMobileLength  = 10
	MaxMobileLength  = 15
	MaxAddressLength = 500
	MaxRemarksLength = 500
)

var (
	ErrPastSevaDate    = errs.Validation("seva date must be today or a future date")
	ErrEmptyName       = errs.Validation("devotee name cannot be empty")
	ErrNameTooLong     = errs.Validation("devotee name is too long")
	ErrInvalidMobile   = errs.Validation("mobile number must be 10 to 15 characters")
	ErrAddressTooLong  = errs.Validation("address is too long")
	ErrRemarksTooLong  = errs.Validation("remarks are too long")
	ErrInvalidStatus   = errs.Validation("invalid seva booking status")
	ErrEmptySelection  = errs.Validation("seva_ids list is required")
	ErrMissingSevaDate = errs.Validation("seva date is required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return st, nil
	default:
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
}

type Services struct {
	Clock    clock.Clock
	Location *time.Location
}

func (s *Services) Now() time.Time   { return s.Clock.Now() }
func (s *Services) Today() time.Time { return clock.Today(s.Clock, s.Location) }

type NewBookingParams struct {
	SevaID   uuid.UUID
	SevaDate time.Time
	Name     string
	MobileNo string
	GotraID  *uuid.UUID
	Address  *string
	Remarks  *string
}

// Booking is a devotee's booking of a seva on a date. Bookings never conflict
// with each other.
type Booking struct {
	id          uuid.UUID
	sevaID      uuid.UUID
	sevaDate    time.Time
	receiptDate time.Time
	name        string
	mobileNo    string
	gotraID     *uuid.UUID
	address     *string
	remarks     *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(services *Services, p NewBookingParams) (*Booking, error) {
	today := services.Today()
	sevaDate, err := validateSevaDate(p.SevaDate, today)
	if err != nil {
		return nil, err
	}
	name, err := validateName(p.Name)
	if err != nil {
		return nil, err
	}
	mobile, err := validateMobile(p.MobileNo)
	if err != nil {
		return nil, err
	}
	address, err := validateOptional(p.Address, MaxAddressLength, ErrAddressTooLong)
	if err != nil {
		return nil, err
	}
	remarks, err := validateOptional(p.Remarks, MaxRemarksLength, ErrRemarksTooLong)
	if err != nil {
		return nil, err
	}

	now := services.Now()
	return &Booking{
		id:          uuid.New(),
		sevaID:      p.SevaID,
		sevaDate:    sevaDate,
		receiptDate: today,
		name:        name,
		mobileNo:    mobile,
		gotraID:     p.GotraID,
		address:     address,
		remarks:     remarks,
		status:      StatusConfirmed,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, sevaID uuid.UUID,
	sevaDate, receiptDate time.Time,
	name, mobileNo string,
	gotraID *uuid.UUID,
	address, remarks *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		sevaID:      sevaID,
		sevaDate:    sevaDate,
		receiptDate: receiptDate,
		name:        name,
		mobileNo:    mobileNo,
		gotraID:     gotraID,
		address:     address,
		remarks:     remarks,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// BookingPatch carries optional replacements. An empty Address or Remarks clears it.
// BookingPatch leaves nil fields unchanged. ClearGotra removes the gotra and
// wins over GotraID.
type BookingPatch struct {
	SevaID     *uuid.UUID
	SevaDate   *time.Time
	Name       *string
	MobileNo   *string
	GotraID    *uuid.UUID
	ClearGotra bool
	Address    *string
	Remarks    *string
}

func (b *Booking) Apply(services *Services, p BookingPatch) error {
	next := *b

	if p.SevaID != nil {
		next.sevaID = *p.SevaID
	}
	if p.SevaDate != nil {
		d, err := validateSevaDate(*p.SevaDate, services.Today())
		if err != nil {
			return err
		}
		next.sevaDate = d
	}
	if p.Name != nil {
		n, err := validateName(*p.Name)
		if err != nil {
			return err
		}
		next.name = n
	}
	if p.MobileNo != nil {
		m, err := validateMobile(*p.MobileNo)
		if err != nil {
			return err
		}
		next.mobileNo = m
	}
	switch {
	case p.ClearGotra:
		next.gotraID = nil
	case p.GotraID != nil:
		id := *p.GotraID
		next.gotraID = &id
	}

	address, err := validateOptional(patch.Optional(p.Address, b.address), MaxAddressLength, ErrAddressTooLong)
	if err != nil {
		return err
	}
	next.address = address
	remarks, err := validateOptional(patch.Optional(p.Remarks, b.remarks), MaxRemarksLength, ErrRemarksTooLong)
	if err != nil {
		return err
	}
	next.remarks = remarks

	next.updatedAt = services.Now()
	*b = next
	return nil
}

// ChangeStatus accepts any status; seva bookings have no lifecycle rules.
func (b *Booking) ChangeStatus(to Status, now time.Time) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	b.status = to
	b.updatedAt = now
	return nil
}

func validateSevaDate(d, today time.Time) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, ErrMissingSevaDate
	}
	day := clock.DateOf(d)
	if day.Before(today) {
		return time.Time{}, ErrPastSevaDate
	}
	return day, nil
}

func validateName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ErrEmptyName
	}
	if len([]rune(n)) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return n, nil
}

func validateMobile(mobile string) (string, error) {
	m := strings.TrimSpace(mobile)
	if l := len(m); l < MinMobileLength || l > MaxMobileLength {
		return "", ErrInvalidMobile
	}
	return m, nil
}

func validateOptional(v *string, limit int, tooLong error) (*string, error) {
	if v == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil, nil
	}
	if len([]rune(t)) > limit {
		return nil, tooLong
	}
	return &t, nil
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) SevaID() uuid.UUID      { return b.sevaID }
func (b *Booking) SevaDate() time.Time    { return b.sevaDate }
func (b *Booking) ReceiptDate() time.Time { return b.receiptDate }
func (b *Booking) Name() string           { return b.name }
func (b *Booking) MobileNo() string       { return b.mobileNo }
func (b *Booking) GotraID() *uuid.UUID    { return b.gotraID }
func (b *Booking) Address() *string       { return b.address }
func (b *Booking) Remarks() *string       { return b.remarks }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
