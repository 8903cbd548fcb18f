package readstore

import (
	"context"

	"temple-booking/internal/domain/calendar"
	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/infra"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarReadQueries interface {
	ListReservationsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsInWindowParams) ([]sqlc.ListReservationsInWindowRow, error)
}

type CalendarReadStore struct {
	queries CalendarReadQueries
	db      sqlc.DBTX
}

func NewCalendarReadStore(queries CalendarReadQueries, db sqlc.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarReadStore) FindInWindow(
	ctx context.Context,
	window reservation.DateRange,
	resourceID *uuid.UUID,
	includeCancelled bool,
) ([]calendar.Entry, error) {
	rows, err := r.queries.ListReservationsInWindow(ctx, r.db, sqlc.ListReservationsInWindowParams{
		WindowStart:      pgconv.DateToPgtype(window.Start()),
		WindowEnd:        pgconv.DateToPgtype(window.End()),
		ResourceID:       pgconv.UUIDPtrToPgtype(resourceID),
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hall bookings for calendar", err)
	}

	entries := make([]calendar.Entry, len(rows))
	for i, row := range rows {
		entries[i] = calendar.Entry{
			ReservationID: row.ID,
			ResourceID:    row.ResourceID,
			ResourceName:  row.ResourceName,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			Purpose:       pgconv.StringPtrFromPgtype(row.EventPurpose),
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Status:        reservation.Status(row.Status),
		}
	}
	return entries, nil
}
