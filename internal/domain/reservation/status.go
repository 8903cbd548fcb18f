package reservation

import (
	"strings"

	"temple-booking/internal/pkg/errs"
)

var (
	ErrInvalidStatus        = errs.Validation("invalid reservation status")
	ErrIllegalTransition    = errs.Validation("illegal reservation status transition")
	ErrInvalidInitialStatus = errs.Validation("a reservation can only be created as pending or confirmed")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Cancelled has no outgoing edges; confirmed cannot go back to pending.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
	},
	StatusCancelled: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// Blocks reports whether a reservation in this status occupies its slot.
func (s Status) Blocks() bool {
	return s == StatusConfirmed
}

func CanTransition(from, to Status) bool {
	return allowedTransitions[from][to]
}
