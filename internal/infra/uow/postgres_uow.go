package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/infra/readstore"
	"temple-booking/internal/infra/repository"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/queries"
	"temple-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// RepeatableRead pins one snapshot for every statement; ReadCommitted would
// take a fresh one per statement.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, snap queries.Snapshot) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(ctx context.Context, db sqlc.DBTX) error {
		return fn(ctx, &readSnapshot{q: u.q, dbtx: db})
	})
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type readSnapshot struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (s *readSnapshot) SevaBookings() queries.SevaBookingReadStore {
	return readstore.NewSevaBookingReadStore(s.q, s.dbtx)
}

func (s *readSnapshot) Aggregation() queries.AggregationReadStore {
	return readstore.NewAggregationReadStore(s.q, s.dbtx)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	resourceRepo     shared.ResourceRepository
	reservationRepo  shared.ReservationRepository
	sevaBookingRepo  shared.SevaBookingRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Resources() shared.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.uow.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) SevaBookings() shared.SevaBookingRepository {
	if t.sevaBookingRepo == nil {
		t.sevaBookingRepo = repository.NewSevaBookingRepository(t.uow.q, t.dbtx)
	}
	return t.sevaBookingRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	resourceStore    *readstore.ResourceReadStore
	reservationStore *readstore.ReservationReadStore
	sevaStore        *readstore.SevaReadStore
}

func (r *commandReads) resources() *readstore.ResourceReadStore {
	if r.resourceStore == nil {
		r.resourceStore = readstore.NewResourceReadStore(r.uow.q, r.dbtx)
	}
	return r.resourceStore
}

func (r *commandReads) sevas() *readstore.SevaReadStore {
	if r.sevaStore == nil {
		r.sevaStore = readstore.NewSevaReadStore(r.uow.q, r.dbtx)
	}
	return r.sevaStore
}

func (r *commandReads) FindConfirmedInDateWindow(
	ctx context.Context,
	resourceID uuid.UUID,
	window reservation.DateRange,
	excludeID *uuid.UUID,
) ([]reservation.StoredSlot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}
	return r.reservationStore.FindConfirmedInDateWindow(ctx, resourceID, window, excludeID)
}

func (r *commandReads) ResourceNameTaken(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	return r.resources().NameTaken(ctx, name, excludeID)
}

func (r *commandReads) CountReservationsByResource(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	return r.resources().CountReservations(ctx, resourceID)
}

func (r *commandReads) SevaByID(ctx context.Context, id uuid.UUID) (*shared.SevaSnapshot, error) {
	v, err := r.sevas().FindSevaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.SevaSnapshot{
		ID:   v.ID,
		Name: v.Name,
	}
	if v.Amount != nil {
		paise := int64(*v.Amount)
		snapshot.Amount = &paise
	}
	return snapshot, nil
}

func (r *commandReads) GotraByID(ctx context.Context, id uuid.UUID) (*shared.GotraSnapshot, error) {
	v, err := r.sevas().FindGotraByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.GotraSnapshot{ID: v.ID, Name: v.Name}, nil
}
