//go:build unit || e2e

package builder

import (
	"time"

	"temple-booking/internal/domain/seva"
	reqdto "temple-booking/internal/handler/dto/request"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func SevaServices() *seva.Services {
	return &seva.Services{Clock: clock.NewMockClock(FixedNow), Location: Kolkata()}
}

type SevaBookingBuilder struct {
	ID          uuid.UUID
	SevaID      uuid.UUID
	SevaName    string
	SevaAmount  *seva.Money
	SevaDate    time.Time
	ReceiptDate time.Time
	Name        string
	MobileNo    string
	GotraID     *uuid.UUID
	GotraName   *string
	Address     *string
	Remarks     *string
	Status      seva.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSevaBookingBuilder() *SevaBookingBuilder {
	amount := seva.Money(5000)
	gotraID := uuid.New()
	gotra := "Kashyapa"
	address := "12 Temple Street, Chennai"
	return &SevaBookingBuilder{
		ID:          uuid.New(),
		SevaID:      uuid.New(),
		SevaName:    "Archana",
		SevaAmount:  &amount,
		SevaDate:    Date(2024, 1, 10),
		ReceiptDate: Date(2024, 1, 1),
		Name:        "Ramesh Sharma",
		MobileNo:    "9123456780",
		GotraID:     &gotraID,
		GotraName:   &gotra,
		Address:     &address,
		Status:      seva.StatusConfirmed,
		CreatedAt:   FixedNow,
		UpdatedAt:   FixedNow,
	}
}

func (b *SevaBookingBuilder) With(mutate func(*SevaBookingBuilder)) *SevaBookingBuilder {
	mutate(b)
	return b
}

func (b *SevaBookingBuilder) BuildStored() *seva.Booking {
	return seva.ReconstructBooking(
		b.ID, b.SevaID, b.SevaDate, b.ReceiptDate, b.Name, b.MobileNo,
		b.GotraID, b.Address, b.Remarks, b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *SevaBookingBuilder) BuildCreateRequestDTO() reqdto.CreateSevaBookingRequest {
	return reqdto.CreateSevaBookingRequest{
		SevaID:   b.SevaID,
		SevaDate: b.SevaDate.Format(time.DateOnly),
		Name:     b.Name,
		MobileNo: b.MobileNo,
		GotraID:  b.GotraID,
		Address:  b.Address,
		Remarks:  b.Remarks,
	}
}

func (b *SevaBookingBuilder) BuildViewQuery() *queries.SevaBookingView {
	return &queries.SevaBookingView{
		ID:          b.ID,
		SevaID:      b.SevaID,
		SevaName:    b.SevaName,
		SevaAmount:  b.SevaAmount,
		SevaDate:    b.SevaDate,
		ReceiptDate: b.ReceiptDate,
		Name:        b.Name,
		MobileNo:    b.MobileNo,
		GotraID:     b.GotraID,
		GotraName:   b.GotraName,
		Address:     b.Address,
		Remarks:     b.Remarks,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *SevaBookingBuilder) BuildLine() seva.Line {
	return seva.Line{
		BookingID:   b.ID,
		ReceiptDate: b.ReceiptDate,
		SevaDate:    b.SevaDate,
		SevaID:      b.SevaID,
		SevaName:    b.SevaName,
		SevaAmount:  b.SevaAmount,
		Name:        b.Name,
		MobileNo:    b.MobileNo,
		GotraName:   b.GotraName,
		Address:     b.Address,
		Remarks:     b.Remarks,
		Status:      b.Status,
	}
}

func (b *SevaBookingBuilder) BuildInfra() sqlc.SevaBookings {
	return sqlc.SevaBookings{
		ID:          b.ID,
		SevaID:      b.SevaID,
		SevaDate:    pgconv.DateToPgtype(b.SevaDate),
		ReceiptDate: pgconv.DateToPgtype(b.ReceiptDate),
		Name:        b.Name,
		MobileNo:    b.MobileNo,
		GotraID:     pgconv.UUIDPtrToPgtype(b.GotraID),
		Address:     pgconv.StringPtrToPgtype(b.Address),
		Remarks:     pgconv.StringPtrToPgtype(b.Remarks),
		Status:      string(b.Status),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
	}
}
