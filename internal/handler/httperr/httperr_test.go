//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"temple-booking/internal/handler/httperr"
	"temple-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	missing := errs.NotFound("hall not found")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: missing, want: http.StatusNotFound},
		{name: "cause is kept out of the match", err: errs.WithCause(missing, errors.New("no rows")), want: http.StatusNotFound},
		{name: "validation", err: errs.Validation("bad date"), want: http.StatusBadRequest},
		{name: "wrapped validation", err: errs.Wrapf(errs.Validation("bad date"), "%d days", 40), want: http.StatusBadRequest},
		{name: "conflict", err: errs.Conflict("slot taken"), want: http.StatusConflict},
		{name: "未分類のエラーは500", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}
