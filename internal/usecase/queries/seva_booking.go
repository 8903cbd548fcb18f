package queries

import (
	"context"
	"time"

	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/pkg/ptr"

	"github.com/google/uuid"
)

var ErrSevaBookingNotFound = errs.NotFound("seva booking not found")

type SevaBookingFilter struct {
	MobileNo *string
	SevaDate *time.Time
}

type SevaBookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SevaBookingView, error)
	List(ctx context.Context, filter SevaBookingFilter, page Page) ([]*SevaBookingView, error)
	Count(ctx context.Context, filter SevaBookingFilter) (int64, error)
}

type SevaBookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SevaBookingView, error)
	List(ctx context.Context, filter SevaBookingFilter, skip, limit int) (*SevaBookingPage, error)
}

type sevaBookingQueriesImpl struct {
	repo SevaBookingReadStore
	unit ReadOnlyUnit
}

func NewSevaBookingQueries(repo SevaBookingReadStore, unit ReadOnlyUnit) SevaBookingQueries {
	return &sevaBookingQueriesImpl{repo: repo, unit: unit}
}

func (q *sevaBookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SevaBookingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrSevaBookingNotFound, err)
		}
		return nil, err
	}
	return v, nil
}

func (q *sevaBookingQueriesImpl) List(ctx context.Context, filter SevaBookingFilter, skip, limit int) (*SevaBookingPage, error) {
	page, err := NewPage(skip, limit, DefaultBookingListLimit)
	if err != nil {
		return nil, err
	}
	filter.MobileNo = ptr.TrimmedOrNil(filter.MobileNo)
	if filter.SevaDate != nil {
		d := clock.DateOf(*filter.SevaDate)
		filter.SevaDate = &d
	}

	result := &SevaBookingPage{}
	err = q.unit.WithinReadOnly(ctx, func(ctx context.Context, snap Snapshot) error {
		store := snap.SevaBookings()
		items, err := store.List(ctx, filter, page)
		if err != nil {
			return err
		}
		total, err := store.Count(ctx, filter)
		if err != nil {
			return err
		}
		result.Items, result.TotalCount = items, total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
