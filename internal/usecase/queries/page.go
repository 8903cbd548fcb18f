package queries

import (
	"math"

	"temple-booking/internal/pkg/errs"
)

const (
	MaxListLimit            = 200
	DefaultHallListLimit    = 100
	DefaultBookingListLimit = 50
)

var (
	ErrNegativeSkip = errs.Validation("skip must not be negative")
	ErrSkipTooLarge = errs.Validation("skip is out of range")
)

// Page is an offset window already clamped for the store.
type Page struct {
	Offset int32
	Limit  int32
}

func ValidateLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func NewPage(skip, limit, fallback int) (Page, error) {
	if skip < 0 {
		return Page{}, ErrNegativeSkip
	}
	if skip > math.MaxInt32 {
		return Page{}, ErrSkipTooLarge
	}
	return Page{Offset: int32(skip), Limit: int32(ValidateLimit(limit, fallback))}, nil
}
