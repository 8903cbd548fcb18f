package commands

import (
	"context"
	"encoding/json"
	"time"

	"temple-booking/internal/domain/reservation"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	notificationKindReservation = "reservation"

	TopicReservationCreated       = "reservation_created"
	TopicReservationStatusChanged = "reservation_status_changed"
)

// ReservationEvent is the outbox payload for hall booking lifecycle changes.
type ReservationEvent struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	Status         string    `json:"status"`
	PreviousStatus *string   `json:"previous_status,omitempty"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newReservationEvent(res *reservation.Reservation, previous *reservation.Status, at time.Time) ReservationEvent {
	ev := ReservationEvent{
		ReservationID: res.ID(),
		ResourceID:    res.ResourceID(),
		Status:        res.Status().String(),
		StartDate:     res.Dates().Start().Format(time.DateOnly),
		EndDate:       res.Dates().End().Format(time.DateOnly),
		StartTime:     res.Times().Start().String(),
		EndTime:       res.Times().End().String(),
		OccurredAt:    at,
	}
	if previous != nil {
		p := previous.String()
		ev.PreviousStatus = &p
	}
	return ev
}

// enqueueReservationEvent writes to the outbox inside the caller's transaction.
func enqueueReservationEvent(ctx context.Context, tx shared.Tx, topic string, ev ReservationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal reservation event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindReservation, topic, payload, ev.OccurredAt)
}
