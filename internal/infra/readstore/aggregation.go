package readstore

import (
	"context"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/infra"
	"temple-booking/internal/infra/repository/converter"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AggregationReadQueries interface {
	GetSevaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sevas, error)
	ListSevaBookingLines(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSevaBookingLinesParams) ([]sqlc.ListSevaBookingLinesRow, error)
}

type AggregationReadStore struct {
	queries AggregationReadQueries
	db      sqlc.DBTX
}

func NewAggregationReadStore(queries AggregationReadQueries, db sqlc.DBTX) *AggregationReadStore {
	return &AggregationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AggregationReadStore) FindSeva(ctx context.Context, id uuid.UUID) (*seva.Seva, error) {
	row, err := r.queries.GetSevaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seva not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seva by ID", err)
	}
	amount, err := converter.AmountFromInfra(row.Amount)
	if err != nil {
		return nil, infra.WrapRepoErr("stored seva amount is malformed", err)
	}
	return seva.ReconstructSeva(row.ID, row.Name, amount), nil
}

// FindLines loads joined booking lines in seva date, receipt date, creation order.
func (r *AggregationReadStore) FindLines(ctx context.Context, sevaIDs []uuid.UUID, filter seva.DateFilter) ([]seva.Line, error) {
	rows, err := r.queries.ListSevaBookingLines(ctx, r.db, sqlc.ListSevaBookingLinesParams{
		SevaIds:   sevaIDs,
		StartDate: pgconv.DatePtrToPgtype(filter.From),
		EndDate:   pgconv.DatePtrToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load seva booking lines", err)
	}

	lines := make([]seva.Line, 0, len(rows))
	for _, row := range rows {
		amount, err := converter.AmountFromInfra(row.SevaAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("stored seva amount is malformed", err)
		}
		lines = append(lines, seva.Line{
			BookingID:   row.ID,
			ReceiptDate: pgconv.DateFromPgtype(row.ReceiptDate),
			SevaDate:    pgconv.DateFromPgtype(row.SevaDate),
			SevaID:      row.SevaID,
			SevaName:    row.SevaName,
			SevaAmount:  amount,
			Name:        row.Name,
			MobileNo:    row.MobileNo,
			GotraName:   pgconv.StringPtrFromPgtype(row.GotraName),
			Address:     pgconv.StringPtrFromPgtype(row.Address),
			Remarks:     pgconv.StringPtrFromPgtype(row.Remarks),
			Status:      seva.Status(row.Status),
		})
	}
	return lines, nil
}
