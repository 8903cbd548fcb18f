package queries

import "context"

// Snapshot hands out read stores bound to one repeatable-read transaction,
// so every statement issued through them sees the same committed data.
type Snapshot interface {
	SevaBookings() SevaBookingReadStore
	Aggregation() AggregationReadStore
}

type ReadOnlyUnit interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, snap Snapshot) error) error
}
