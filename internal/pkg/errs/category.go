package errs

import cr "github.com/cockroachdb/errors"

// Category markers. Every domain and use-case sentinel belongs to exactly one.
var (
	ErrNotFound   = New("not found")
	ErrValidation = New("validation failed")
	ErrConflict   = New("conflict")
	ErrInternal   = New("internal error")
)

type sentinel struct {
	msg      string
	category error
}

func (e *sentinel) Error() string { return e.msg }

func (e *sentinel) Is(target error) bool { return target == e.category }

func NotFound(msg string) error   { return &sentinel{msg: msg, category: ErrNotFound} }
func Validation(msg string) error { return &sentinel{msg: msg, category: ErrValidation} }
func Conflict(msg string) error   { return &sentinel{msg: msg, category: ErrConflict} }

// WithCause keeps sentinel as the matchable error and records cause for diagnostics only.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(sentinel, cause)
}

// CategoryOf returns ErrInternal for anything that was not classified.
func CategoryOf(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, ErrNotFound):
		return ErrNotFound
	case Is(err, ErrValidation):
		return ErrValidation
	case Is(err, ErrConflict):
		return ErrConflict
	default:
		return ErrInternal
	}
}
