package readstore

import (
	"context"

	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SevaBookingReadQueries interface {
	GetSevaBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSevaBookingViewByIDRow, error)
	ListSevaBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSevaBookingsParams) ([]sqlc.ListSevaBookingsRow, error)
	CountSevaBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountSevaBookingsParams) (int64, error)
}

type SevaBookingReadStore struct {
	queries SevaBookingReadQueries
	db      sqlc.DBTX
}

func NewSevaBookingReadStore(queries SevaBookingReadQueries, db sqlc.DBTX) *SevaBookingReadStore {
	return &SevaBookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SevaBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SevaBookingView, error) {
	row, err := r.queries.GetSevaBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seva booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seva booking by ID", err)
	}
	return toSevaBookingView(sqlc.ListSevaBookingsRow(row))
}

func (r *SevaBookingReadStore) List(ctx context.Context, filter queries.SevaBookingFilter, page queries.Page) ([]*queries.SevaBookingView, error) {
	rows, err := r.queries.ListSevaBookings(ctx, r.db, sqlc.ListSevaBookingsParams{
		MobileNo: pgconv.StringPtrToPgtype(filter.MobileNo),
		SevaDate: pgconv.DatePtrToPgtype(filter.SevaDate),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seva bookings", err)
	}

	result := make([]*queries.SevaBookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toSevaBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *SevaBookingReadStore) Count(ctx context.Context, filter queries.SevaBookingFilter) (int64, error) {
	n, err := r.queries.CountSevaBookings(ctx, r.db, sqlc.CountSevaBookingsParams{
		MobileNo: pgconv.StringPtrToPgtype(filter.MobileNo),
		SevaDate: pgconv.DatePtrToPgtype(filter.SevaDate),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count seva bookings", err)
	}
	return n, nil
}

func toSevaBookingView(row sqlc.ListSevaBookingsRow) (*queries.SevaBookingView, error) {
	amount, err := converter.AmountFromInfra(row.SevaAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored seva amount is malformed", err)
	}
	return &queries.SevaBookingView{
		ID:          row.ID,
		SevaID:      row.SevaID,
		SevaName:    row.SevaName,
		SevaAmount:  amount,
		SevaDate:    pgconv.DateFromPgtype(row.SevaDate),
		ReceiptDate: pgconv.DateFromPgtype(row.ReceiptDate),
		Name:        row.Name,
		MobileNo:    row.MobileNo,
		GotraID:     pgconv.UUIDPtrFromPgtype(row.GotraID),
		GotraName:   pgconv.StringPtrFromPgtype(row.GotraName),
		Address:     pgconv.StringPtrFromPgtype(row.Address),
		Remarks:     pgconv.StringPtrFromPgtype(row.Remarks),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
