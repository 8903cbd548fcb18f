package converter

import (
	"fmt"

	"temple-booking/internal/domain/reservation"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationToInfra also fills the derived start_at/end_at columns backing
// the exclusion constraint.
func ReservationToInfra(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	slot, err := res.Slot()
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}

	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		ResourceID:    res.ResourceID(),
		CustomerName:  res.Customer().Name(),
		CustomerPhone: res.Customer().Phone(),
		EventPurpose:  pgconv.StringPtrToPgtype(res.Purpose()),
		StartDate:     pgconv.DateToPgtype(res.Dates().Start()),
		EndDate:       pgconv.DateToPgtype(res.Dates().End()),
		StartTime:     res.Times().Start().String(),
		EndTime:       res.Times().End().String(),
		StartAt:       pgtype.Timestamp{Time: slot.Start(), Valid: true},
		EndAt:         pgtype.Timestamp{Time: slot.End(), Valid: true},
		Status:        res.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationStatusToInfra(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	customer, err := reservation.NewCustomer(row.CustomerName, row.CustomerPhone)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	dates, err := reservation.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	times, err := reservation.NewTimeRange(row.StartTime, row.EndTime)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.ResourceID,
		customer,
		pgconv.StringPtrFromPgtype(row.EventPurpose),
		dates,
		times,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func StoredSlotFromInfra(row sqlc.FindConfirmedReservationsInWindowRow) reservation.StoredSlot {
	return reservation.StoredSlot{
		ReservationID: row.ID,
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
	}
}
