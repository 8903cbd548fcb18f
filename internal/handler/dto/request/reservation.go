package request

import (
	"temple-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID    uuid.UUID `json:"resource_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required,max=100"`
	CustomerPhone string    `json:"customer_phone" binding:"required,min=10,max=15"`
	EventPurpose  *string   `json:"event_purpose" binding:"omitempty,max=500"`
	StartDate     string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	StartTime     string    `json:"start_time" binding:"required,hhmm"`
	EndTime       string    `json:"end_time" binding:"required,hhmm"`
	// pending or confirmed; confirmed when omitted
	Status *string `json:"status"`
}

func (r CreateReservationRequest) ToParams() (reservation.NewReservationParams, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return reservation.NewReservationParams{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return reservation.NewReservationParams{}, err
	}
	p := reservation.NewReservationParams{
		ResourceID:    r.ResourceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Purpose:       r.EventPurpose,
		StartDate:     start,
		EndDate:       end,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
	if r.Status != nil {
		st, err := reservation.ParseStatus(*r.Status)
		if err != nil {
			return reservation.NewReservationParams{}, err
		}
		p.Status = st
	}
	return p, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListReservationsQuery struct {
	ListQuery
	Status     *string `form:"status"`
	ResourceID *string `form:"resource_id" binding:"omitempty,uuid"`
}

func (q ListReservationsQuery) ResourceUUID() *uuid.UUID {
	return parseOptionalUUID(q.ResourceID)
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
