//go:build unit

package commands_test

import (
	"context"
	"testing"

	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/usecase/shared"
	"temple-booking/tests/common/builder"
	sharedmock "temple-booking/tests/mock/shared"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

// uowFixture runs every Within callback against one mocked transaction.
type uowFixture struct {
	clock         *clock.MockClock
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	resources     *sharedmock.MockResourceRepository
	reservations  *sharedmock.MockReservationRepository
	sevaBookings  *sharedmock.MockSevaBookingRepository
	notifications *sharedmock.MockNotificationRepository
}

func newUowFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		clock:         clock.NewMockClock(builder.FixedNow),
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		resources:     sharedmock.NewMockResourceRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		sevaBookings:  sharedmock.NewMockSevaBookingRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}
	f.tx.EXPECT().Resources().Return(f.resources).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().SevaBookings().Return(f.sevaBookings).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}

// expectWithin makes the unit of work call fn with the mocked transaction.
func (f *uowFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr("test", errors.New("driver error"), kind)
}
