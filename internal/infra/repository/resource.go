package repository

import (
	"context"

	"temple-booking/internal/domain/resource"
	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceWriteQueries interface {
	CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) (sqlc.Resources, error)
	LockResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	UpdateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceParams) (int64, error)
	DeleteResource(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.LockResourceByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hall", err)
	}
	return converter.ResourceFromInfra(row), nil
}

func (r *ResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) (uuid.UUID, error) {
	row, err := r.queries.CreateResource(ctx, tx, converter.ResourceToInfra(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hall", err)
	}
	return row.ID, nil
}

func (r *ResourceRepository) Update(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	n, err := r.queries.UpdateResource(ctx, tx, converter.ResourceUpdateToInfra(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update hall", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteResource(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hall", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}
