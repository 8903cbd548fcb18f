package queries

import (
	"time"

	"temple-booking/internal/domain/seva"

	"github.com/google/uuid"
)

// ResourceView represents read-optimized hall data
type ResourceView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Capacity   int32     `json:"capacity"`
	Facilities []string  `json:"facilities"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReservationView represents a hall booking joined with its hall name
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	EventPurpose  *string   `json:"event_purpose,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SevaView struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Amount *seva.Money `json:"amount,omitempty"`
}

type GotraView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// SevaBookingView represents a seva booking joined with seva and gotra names
type SevaBookingView struct {
	ID          uuid.UUID   `json:"id"`
	SevaID      uuid.UUID   `json:"seva_id"`
	SevaName    string      `json:"seva_name"`
	SevaAmount  *seva.Money `json:"seva_amount,omitempty"`
	SevaDate    time.Time   `json:"seva_date"`
	ReceiptDate time.Time   `json:"receipt_date"`
	Name        string      `json:"name"`
	MobileNo    string      `json:"mobile_no"`
	GotraID     *uuid.UUID  `json:"gotra_id,omitempty"`
	GotraName   *string     `json:"gotra_name,omitempty"`
	Address     *string     `json:"address,omitempty"`
	Remarks     *string     `json:"remarks,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type SevaBookingPage struct {
	TotalCount int64              `json:"total_count"`
	Items      []*SevaBookingView `json:"items"`
}
