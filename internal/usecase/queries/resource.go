package queries

import (
	"context"

	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrResourceNotFound = errs.NotFound("hall not found")

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, page Page) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, skip, limit int) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	repo ResourceReadStore
}

func NewResourceQueries(repo ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{repo: repo}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrResourceNotFound, err)
		}
		return nil, err
	}
	return v, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context, skip, limit int) ([]*ResourceView, error) {
	page, err := NewPage(skip, limit, DefaultHallListLimit)
	if err != nil {
		return nil, err
	}
	return q.repo.List(ctx, page)
}
