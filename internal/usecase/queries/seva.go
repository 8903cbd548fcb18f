package queries

import (
	"context"

	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSevaNotFound  = errs.NotFound("seva not found")
	ErrGotraNotFound = errs.NotFound("gotra not found")
)

// SevaReadStore serves the seva and gotra master data.
type SevaReadStore interface {
	ListSevas(ctx context.Context) ([]*SevaView, error)
	FindSevaByID(ctx context.Context, id uuid.UUID) (*SevaView, error)
	ListGotras(ctx context.Context) ([]*GotraView, error)
	FindGotraByID(ctx context.Context, id uuid.UUID) (*GotraView, error)
}

type SevaQueries interface {
	ListSevas(ctx context.Context) ([]*SevaView, error)
	GetSeva(ctx context.Context, id uuid.UUID) (*SevaView, error)
	ListGotras(ctx context.Context) ([]*GotraView, error)
	GetGotra(ctx context.Context, id uuid.UUID) (*GotraView, error)
}

type sevaQueriesImpl struct {
	repo SevaReadStore
}

func NewSevaQueries(repo SevaReadStore) SevaQueries {
	return &sevaQueriesImpl{repo: repo}
}

func (q *sevaQueriesImpl) ListSevas(ctx context.Context) ([]*SevaView, error) {
	return q.repo.ListSevas(ctx)
}

func (q *sevaQueriesImpl) GetSeva(ctx context.Context, id uuid.UUID) (*SevaView, error) {
	v, err := q.repo.FindSevaByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrSevaNotFound, err)
		}
		return nil, err
	}
	return v, nil
}

func (q *sevaQueriesImpl) ListGotras(ctx context.Context) ([]*GotraView, error) {
	return q.repo.ListGotras(ctx)
}

func (q *sevaQueriesImpl) GetGotra(ctx context.Context, id uuid.UUID) (*GotraView, error) {
	v, err := q.repo.FindGotraByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrGotraNotFound, err)
		}
		return nil, err
	}
	return v, nil
}
