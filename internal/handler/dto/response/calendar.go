package response

import (
	"temple-booking/internal/domain/calendar"

	"github.com/google/uuid"
)

type CalendarEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	EventPurpose  *string   `json:"event_purpose,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
}

type CalendarResponse struct {
	ViewType     string                  `json:"view_type"`
	StartDate    string                  `json:"start_date"`
	EndDate      string                  `json:"end_date"`
	TotalCount   int                     `json:"total_count"`
	Reservations []CalendarEntryResponse `json:"reservations"`
}

func FromCalendarView(v *calendar.View) *CalendarResponse {
	entries := make([]CalendarEntryResponse, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = CalendarEntryResponse{
			ID:            e.ReservationID,
			ResourceID:    e.ResourceID,
			ResourceName:  e.ResourceName,
			CustomerName:  e.CustomerName,
			CustomerPhone: e.CustomerPhone,
			EventPurpose:  e.Purpose,
			StartDate:     formatDate(e.StartDate),
			EndDate:       formatDate(e.EndDate),
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
			Status:        e.Status.String(),
		}
	}
	return &CalendarResponse{
		ViewType:     string(v.Window.Kind()),
		StartDate:    formatDate(v.Window.Start()),
		EndDate:      formatDate(v.Window.End()),
		TotalCount:   v.TotalCount,
		Reservations: entries,
	}
}
