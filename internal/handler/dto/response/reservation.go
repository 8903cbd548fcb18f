package response

import (
	"time"

	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
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
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return mustCopy[ReservationResponse](v)
}

func FromReservationList(items []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, it := range items {
		res[i] = FromReservationView(it)
	}
	return res
}
