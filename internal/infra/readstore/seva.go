package readstore

import (
	"context"

	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SevaReadQueries interface {
	ListSevas(ctx context.Context, db sqlc.DBTX) ([]sqlc.Sevas, error)
	GetSevaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sevas, error)
	ListGotras(ctx context.Context, db sqlc.DBTX) ([]sqlc.Gotras, error)
	GetGotraByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Gotras, error)
}

type SevaReadStore struct {
	queries SevaReadQueries
	db      sqlc.DBTX
}

func NewSevaReadStore(queries SevaReadQueries, db sqlc.DBTX) *SevaReadStore {
	return &SevaReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SevaReadStore) ListSevas(ctx context.Context) ([]*queries.SevaView, error) {
	rows, err := r.queries.ListSevas(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sevas", err)
	}

	result := make([]*queries.SevaView, 0, len(rows))
	for _, row := range rows {
		v, err := toSevaView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *SevaReadStore) FindSevaByID(ctx context.Context, id uuid.UUID) (*queries.SevaView, error) {
	row, err := r.queries.GetSevaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seva not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seva by ID", err)
	}
	return toSevaView(row)
}

func (r *SevaReadStore) ListGotras(ctx context.Context) ([]*queries.GotraView, error) {
	rows, err := r.queries.ListGotras(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gotras", err)
	}

	result := make([]*queries.GotraView, len(rows))
	for i, row := range rows {
		result[i] = &queries.GotraView{ID: row.ID, Name: row.Name}
	}
	return result, nil
}

func (r *SevaReadStore) FindGotraByID(ctx context.Context, id uuid.UUID) (*queries.GotraView, error) {
	row, err := r.queries.GetGotraByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gotra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gotra by ID", err)
	}
	return &queries.GotraView{ID: row.ID, Name: row.Name}, nil
}

func toSevaView(row sqlc.Sevas) (*queries.SevaView, error) {
	amount, err := converter.AmountFromInfra(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored seva amount is malformed", err)
	}
	return &queries.SevaView{ID: row.ID, Name: row.Name, Amount: amount}, nil
}
