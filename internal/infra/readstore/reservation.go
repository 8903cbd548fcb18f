package readstore

import (
	"context"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	FindConfirmedReservationsInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.FindConfirmedReservationsInWindowParams) ([]sqlc.FindConfirmedReservationsInWindowRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall booking by ID", err)
	}

	return &queries.ReservationView{
		ID:            row.ID,
		ResourceID:    row.ResourceID,
		ResourceName:  row.ResourceName,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		EventPurpose:  pgconv.StringPtrFromPgtype(row.EventPurpose),
		StartDate:     pgconv.DateFromPgtype(row.StartDate),
		EndDate:       pgconv.DateFromPgtype(row.EndDate),
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, page queries.Page) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsParams{
		ResourceID: pgconv.UUIDPtrToPgtype(filter.ResourceID),
		Limit:      page.Limit,
		Offset:     page.Offset,
	}
	if filter.Status != nil {
		params.Status = pgtype.Text{String: filter.Status.String(), Valid: true}
	}

	rows, err := r.queries.ListReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hall bookings", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:            row.ID,
			ResourceID:    row.ResourceID,
			ResourceName:  row.ResourceName,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			EventPurpose:  pgconv.StringPtrFromPgtype(row.EventPurpose),
			StartDate:     pgconv.DateFromPgtype(row.StartDate),
			EndDate:       pgconv.DateFromPgtype(row.EndDate),
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			Status:        row.Status,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// FindConfirmedInDateWindow returns confirmed bookings of the hall whose date
// range touches window. Time-of-day overlap is left to the caller.
func (r *ReservationReadStore) FindConfirmedInDateWindow(
	ctx context.Context,
	resourceID uuid.UUID,
	window reservation.DateRange,
	excludeID *uuid.UUID,
) ([]reservation.StoredSlot, error) {
	rows, err := r.queries.FindConfirmedReservationsInWindow(ctx, r.db, sqlc.FindConfirmedReservationsInWindowParams{
		ResourceID:  resourceID,
		WindowStart: pgconv.DateToPgtype(window.Start()),
		WindowEnd:   pgconv.DateToPgtype(window.End()),
		ExcludeID:   pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed hall bookings", err)
	}

	slots := make([]reservation.StoredSlot, len(rows))
	for i, row := range rows {
		slots[i] = converter.StoredSlotFromInfra(row)
	}
	return slots, nil
}
