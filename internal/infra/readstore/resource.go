package readstore

import (
	"context"

	"temple-booking/internal/infra"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resources, error)
	ResourceNameExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ResourceNameExistsParams) (bool, error)
	CountReservationsByResource(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) (int64, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hall not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hall by ID", err)
	}

	return toResourceView(row), nil
}

func (r *ResourceReadStore) List(ctx context.Context, page queries.Page) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResources(ctx, r.db, sqlc.ListResourcesParams{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}

	result := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		result[i] = toResourceView(row)
	}
	return result, nil
}

// NameTaken reports whether another hall already uses name.
func (r *ResourceReadStore) NameTaken(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	exists, err := r.queries.ResourceNameExists(ctx, r.db, sqlc.ResourceNameExistsParams{
		Name:      name,
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hall name", err)
	}
	return exists, nil
}

func (r *ResourceReadStore) CountReservations(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsByResource(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count hall bookings", err)
	}
	return n, nil
}

func toResourceView(row sqlc.Resources) *queries.ResourceView {
	facilities := row.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return &queries.ResourceView{
		ID:         row.ID,
		Name:       row.Name,
		Capacity:   row.Capacity,
		Facilities: facilities,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
