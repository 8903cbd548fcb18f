//go:build unit || e2e

package builder

import (
	"time"

	"temple-booking/internal/domain/calendar"
	"temple-booking/internal/domain/reservation"
	reqdto "temple-booking/internal/handler/dto/request"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// FixedNow is 2024-01-01 09:00 in Asia/Kolkata.
var FixedNow = time.Date(2024, 1, 1, 3, 30, 0, 0, time.UTC)

func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Kolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 19800)
	}
	return loc
}

func Services() *reservation.Services {
	return &reservation.Services{Clock: clock.NewMockClock(FixedNow), Location: Kolkata()}
}

type ReservationBuilder struct {
	ID            uuid.UUID
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
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	purpose := "Wedding reception"
	return &ReservationBuilder{
		ID:            uuid.New(),
		ResourceID:    uuid.New(),
		ResourceName:  "Auditorium",
		CustomerName:  "Lakshmi Narayan",
		CustomerPhone: "9876543210",
		Purpose:       &purpose,
		StartDate:     Date(2024, 1, 5),
		EndDate:       Date(2024, 1, 5),
		StartTime:     "10:00",
		EndTime:       "12:00",
		Status:        reservation.StatusConfirmed,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Params() reservation.NewReservationParams {
	return reservation.NewReservationParams{
		ResourceID:    b.ResourceID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Purpose:       b.Purpose,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(Services(), b.Params())
}

// BuildStored skips creation rules so tests can hold past or cancelled rows.
func (b *ReservationBuilder) BuildStored() *reservation.Reservation {
	customer, _ := reservation.NewCustomer(b.CustomerName, b.CustomerPhone)
	dates, _ := reservation.NewDateRange(b.StartDate, b.EndDate)
	times, _ := reservation.NewTimeRange(b.StartTime, b.EndTime)
	return reservation.ReconstructReservation(
		b.ID, b.ResourceID, customer, b.Purpose, dates, times, b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildStoredSlot() reservation.StoredSlot {
	return reservation.StoredSlot{
		ReservationID: b.ID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	status := b.Status.String()
	return reqdto.CreateReservationRequest{
		ResourceID:    b.ResourceID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		EventPurpose:  b.Purpose,
		StartDate:     b.StartDate.Format(time.DateOnly),
		EndDate:       b.EndDate.Format(time.DateOnly),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        &status,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		ResourceID:    b.ResourceID,
		ResourceName:  b.ResourceName,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		EventPurpose:  b.Purpose,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildCalendarEntry() calendar.Entry {
	return calendar.Entry{
		ReservationID: b.ID,
		ResourceID:    b.ResourceID,
		ResourceName:  b.ResourceName,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Purpose:       b.Purpose,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
	}
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	start, _ := reservation.ParseTimeOfDay(b.StartTime)
	end, _ := reservation.ParseTimeOfDay(b.EndTime)
	return sqlc.Reservations{
		ID:            b.ID,
		ResourceID:    b.ResourceID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		EventPurpose:  pgconv.StringPtrToPgtype(b.Purpose),
		StartDate:     pgconv.DateToPgtype(b.StartDate),
		EndDate:       pgconv.DateToPgtype(b.EndDate),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		StartAt:       pgtype.Timestamp{Time: start.On(b.StartDate), Valid: true},
		EndAt:         pgtype.Timestamp{Time: end.On(b.EndDate), Valid: true},
		Status:        b.Status.String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt),
	}
}
