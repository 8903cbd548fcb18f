package queries

import (
	"context"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/infra"
	"temple-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// AggregationReadStore loads booking lines ordered by seva date, receipt date
// and creation time. A nil sevaIDs slice means every seva.
type AggregationReadStore interface {
	FindSeva(ctx context.Context, id uuid.UUID) (*seva.Seva, error)
	FindLines(ctx context.Context, sevaIDs []uuid.UUID, filter seva.DateFilter) ([]seva.Line, error)
}

type AggregationQueries interface {
	ByService(ctx context.Context, sevaID uuid.UUID, filter seva.DateFilter) (*seva.ServiceSummary, error)
	ByDate(ctx context.Context, filter seva.DateFilter) ([]seva.DateEntry, error)
	BySelection(ctx context.Context, sevaIDs []uuid.UUID, filter seva.DateFilter) (*seva.Selection, error)
}

type aggregationQueriesImpl struct {
	repo AggregationReadStore
	unit ReadOnlyUnit
}

func NewAggregationQueries(repo AggregationReadStore, unit ReadOnlyUnit) AggregationQueries {
	return &aggregationQueriesImpl{repo: repo, unit: unit}
}

func (q *aggregationQueriesImpl) ByService(ctx context.Context, sevaID uuid.UUID, filter seva.DateFilter) (*seva.ServiceSummary, error) {
	var summary seva.ServiceSummary
	err := q.unit.WithinReadOnly(ctx, func(ctx context.Context, snap Snapshot) error {
		store := snap.Aggregation()
		s, err := store.FindSeva(ctx, sevaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithCause(ErrSevaNotFound, err)
			}
			return err
		}
		lines, err := store.FindLines(ctx, []uuid.UUID{sevaID}, filter)
		if err != nil {
			return err
		}
		summary = seva.ByService(s, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (q *aggregationQueriesImpl) ByDate(ctx context.Context, filter seva.DateFilter) ([]seva.DateEntry, error) {
	lines, err := q.repo.FindLines(ctx, nil, filter)
	if err != nil {
		return nil, err
	}
	return seva.ByDate(lines), nil
}

func (q *aggregationQueriesImpl) BySelection(ctx context.Context, sevaIDs []uuid.UUID, filter seva.DateFilter) (*seva.Selection, error) {
	ids, err := seva.NormalizeSelection(sevaIDs)
	if err != nil {
		return nil, err
	}
	lines, err := q.repo.FindLines(ctx, ids, filter)
	if err != nil {
		return nil, err
	}
	sel, err := seva.BySelection(ids, lines)
	if err != nil {
		return nil, err
	}
	return &sel, nil
}
