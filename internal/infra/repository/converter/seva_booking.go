package converter

import (
	"fmt"

	"temple-booking/internal/domain/seva"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SevaBookingToInfra(b *seva.Booking) sqlc.CreateSevaBookingParams {
	return sqlc.CreateSevaBookingParams{
		ID:          b.ID(),
		SevaID:      b.SevaID(),
		SevaDate:    pgconv.DateToPgtype(b.SevaDate()),
		ReceiptDate: pgconv.DateToPgtype(b.ReceiptDate()),
		Name:        b.Name(),
		MobileNo:    b.MobileNo(),
		GotraID:     pgconv.UUIDPtrToPgtype(b.GotraID()),
		Address:     pgconv.StringPtrToPgtype(b.Address()),
		Remarks:     pgconv.StringPtrToPgtype(b.Remarks()),
		Status:      string(b.Status()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func SevaBookingUpdateToInfra(b *seva.Booking) sqlc.UpdateSevaBookingParams {
	return sqlc.UpdateSevaBookingParams{
		ID:        b.ID(),
		SevaID:    b.SevaID(),
		SevaDate:  pgconv.DateToPgtype(b.SevaDate()),
		Name:      b.Name(),
		MobileNo:  b.MobileNo(),
		GotraID:   pgconv.UUIDPtrToPgtype(b.GotraID()),
		Address:   pgconv.StringPtrToPgtype(b.Address()),
		Remarks:   pgconv.StringPtrToPgtype(b.Remarks()),
		Status:    string(b.Status()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func SevaBookingFromInfra(row sqlc.SevaBookings) (*seva.Booking, error) {
	status, err := seva.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("seva booking %s: %w", row.ID, err)
	}
	return seva.ReconstructBooking(
		row.ID,
		row.SevaID,
		pgconv.DateFromPgtype(row.SevaDate),
		pgconv.DateFromPgtype(row.ReceiptDate),
		row.Name,
		row.MobileNo,
		pgconv.UUIDPtrFromPgtype(row.GotraID),
		pgconv.StringPtrFromPgtype(row.Address),
		pgconv.StringPtrFromPgtype(row.Remarks),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// AmountFromInfra maps a NUMERIC(10,2) amount to paise; NULL stays nil.
func AmountFromInfra(n pgtype.Numeric) (*seva.Money, error) {
	minor, err := pgconv.MinorUnitsFromNumeric(n)
	if err != nil || minor == nil {
		return nil, err
	}
	m := seva.Money(*minor)
	return &m, nil
}
