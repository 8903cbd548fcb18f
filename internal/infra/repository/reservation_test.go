//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/tests/common/builder"
	repositorymock "temple-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Hall Booking Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: booking created"},
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{
			name:       "error: 排他制約違反は重複予約として扱う",
			returnErr:  &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"},
			expectKind: infra.KindExclusionViolated,
		},
		{
			name:       "error: hall was deleted concurrently",
			returnErr:  &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.EndDate = builder.Date(2024, 1, 6)
				b.StartTime = "18:00"
				b.EndTime = "9:30"
			}).BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().
				CreateReservation(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, "18:00", arg.StartTime)
					assert.Equal(t, "09:30", arg.EndTime)
					assert.Equal(t, time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC), arg.StartAt.Time)
					assert.Equal(t, time.Date(2024, 1, 6, 9, 30, 0, 0, time.UTC), arg.EndAt.Time)
					assert.Equal(t, "confirmed", arg.Status)
					assert.True(t, arg.EventPurpose.Valid)
					if tc.returnErr != nil {
						return sqlc.Reservations{}, tc.returnErr
					}
					return sqlc.Reservations{ID: arg.ID}, nil
				})

			id, err := repo.Create(ctx, mockDB, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, res.ID(), id)
		})
	}
}

// =============================================================================
// Lock Hall Booking Tests
// =============================================================================

func TestReservationRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stored row is reconstructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusPending
			b.Purpose = nil
		})
		row := b.BuildInfra()
		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, row.ID).Return(row, nil)

		res, err := repo.LockByID(ctx, mockDB, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Nil(t, res.Purpose())
		assert.Equal(t, "10:00", res.Times().Start().String())
		assert.Equal(t, builder.Date(2024, 1, 5), res.Dates().Start())
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, mockDB, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: 保存済みの時刻が不正な行は読み込めない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := builder.NewReservationBuilder().BuildInfra()
		row.StartTime = "25:99"
		mockQueries.EXPECT().LockReservationByID(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repo.LockByID(ctx, mockDB, row.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Update Status Tests
// =============================================================================

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: status written", affected: 1},
		{name: "error: zero rows", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: exclusion violation on confirm", returnErr: &pgconn.PgError{Code: "23P01"}, expectKind: infra.KindExclusionViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = reservation.StatusCancelled
			}).BuildStored()

			mockQueries.EXPECT().
				UpdateReservationStatus(ctx, mockDB, sqlc.UpdateReservationStatusParams{
					ID:        res.ID(),
					Status:    "cancelled",
					UpdatedAt: pgtypeTimestamptz(res.UpdatedAt()),
				}).
				Return(tc.affected, tc.returnErr)

			err := repo.UpdateStatus(ctx, mockDB, res)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
