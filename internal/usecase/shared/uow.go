package shared

import (
	"context"
	"time"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/domain/resource"
	"temple-booking/internal/domain/seva"
	sqlc "temple-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Resources() ResourceRepository
	Reservations() ReservationRepository
	SevaBookings() SevaBookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands validate against. Inside a Tx they
// see the transaction's own writes and locks.
type CommandReads interface {
	reservation.ConflictFinder
	ResourceNameTaken(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	CountReservationsByResource(ctx context.Context, resourceID uuid.UUID) (int64, error)
	SevaByID(ctx context.Context, id uuid.UUID) (*SevaSnapshot, error)
	GotraByID(ctx context.Context, id uuid.UUID) (*GotraSnapshot, error)
}

type ResourceRepository interface {
	// LockByID takes a row lock that serialises writers on the hall.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error)
	Create(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type SevaBookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *seva.Booking) (uuid.UUID, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*seva.Booking, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *seva.Booking) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
