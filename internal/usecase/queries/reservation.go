package queries

import (
	"context"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.NotFound("hall booking not found")

// ReservationFilter narrows a listing; nil fields do not filter.
type ReservationFilter struct {
	Status     *reservation.Status
	ResourceID *uuid.UUID
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, page Page) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, status *string, resourceID *uuid.UUID, skip, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrReservationNotFound, err)
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, status *string, resourceID *uuid.UUID, skip, limit int) ([]*ReservationView, error) {
	page, err := NewPage(skip, limit, DefaultHallListLimit)
	if err != nil {
		return nil, err
	}
	filter := ReservationFilter{ResourceID: resourceID}
	if status != nil {
		st, err := reservation.ParseStatus(*status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}
	return q.repo.List(ctx, filter, page)
}
