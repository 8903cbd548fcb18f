package repository

import (
	"context"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SevaBookingWriteQueries interface {
	CreateSevaBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSevaBookingParams) (sqlc.SevaBookings, error)
	LockSevaBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SevaBookings, error)
	UpdateSevaBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSevaBookingParams) (int64, error)
}

type SevaBookingRepository struct {
	queries SevaBookingWriteQueries
	db      sqlc.DBTX
}

func NewSevaBookingRepository(queries SevaBookingWriteQueries, db sqlc.DBTX) *SevaBookingRepository {
	return &SevaBookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SevaBookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *seva.Booking) (uuid.UUID, error) {
	row, err := r.queries.CreateSevaBooking(ctx, tx, converter.SevaBookingToInfra(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create seva booking", err)
	}
	return row.ID, nil
}

func (r *SevaBookingRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*seva.Booking, error) {
	row, err := r.queries.LockSevaBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seva booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock seva booking", err)
	}

	b, err := converter.SevaBookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored seva booking is malformed", err)
	}
	return b, nil
}

func (r *SevaBookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *seva.Booking) error {
	n, err := r.queries.UpdateSevaBooking(ctx, tx, converter.SevaBookingUpdateToInfra(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update seva booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("seva booking not found", nil, infra.KindNotFound)
	}
	return nil
}
