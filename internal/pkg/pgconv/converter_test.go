//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"temple-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitsFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    *int64
		wantErr bool
	}{
		{name: "null", in: pgtype.Numeric{}, want: nil},
		{name: "two decimals", in: pgtype.Numeric{Int: big.NewInt(10050), Exp: -2, Valid: true}, want: int64Ptr(10050)},
		{name: "whole rupees", in: pgtype.Numeric{Int: big.NewInt(250), Exp: 0, Valid: true}, want: int64Ptr(25000)},
		{name: "scaled up", in: pgtype.Numeric{Int: big.NewInt(5), Exp: 2, Valid: true}, want: int64Ptr(50000)},
		{name: "extra precision truncates", in: pgtype.Numeric{Int: big.NewInt(123456), Exp: -3, Valid: true}, want: int64Ptr(12345)},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pgconv.MinorUnitsFromNumeric(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinorUnitsToNumeric(t *testing.T) {
	n := pgconv.MinorUnitsToNumeric(int64Ptr(10050))
	require.True(t, n.Valid)
	assert.Equal(t, int32(-2), n.Exp)
	assert.Equal(t, int64(10050), n.Int.Int64())

	assert.False(t, pgconv.MinorUnitsToNumeric(nil).Valid)
}

func TestDateRoundTripDropsClock(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	in := time.Date(2024, 3, 1, 23, 30, 0, 0, ist)

	got := pgconv.DateFromPgtype(pgconv.DateToPgtype(in))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func int64Ptr(v int64) *int64 { return &v }
