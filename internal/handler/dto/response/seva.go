package response

import (
	"time"

	"temple-booking/internal/domain/seva"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SevaResponse struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Amount *seva.Money `json:"amount"`
}

type GotraResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromSevaView(v *queries.SevaView) *SevaResponse {
	return mustCopy[SevaResponse](v)
}

func FromSevaList(items []*queries.SevaView) []*SevaResponse {
	res := make([]*SevaResponse, len(items))
	for i, it := range items {
		res[i] = FromSevaView(it)
	}
	return res
}

func FromGotraView(v *queries.GotraView) *GotraResponse {
	return mustCopy[GotraResponse](v)
}

func FromGotraList(items []*queries.GotraView) []*GotraResponse {
	res := make([]*GotraResponse, len(items))
	for i, it := range items {
		res[i] = FromGotraView(it)
	}
	return res
}

type SevaBookingResponse struct {
	ID          uuid.UUID   `json:"id"`
	SevaID      uuid.UUID   `json:"seva_id"`
	SevaName    string      `json:"seva_name"`
	SevaAmount  *seva.Money `json:"seva_amount"`
	SevaDate    string      `json:"seva_date"`
	ReceiptDate string      `json:"receipt_date"`
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

type SevaBookingListResponse struct {
	TotalCount int64                  `json:"total_count"`
	Items      []*SevaBookingResponse `json:"items"`
}

func FromSevaBookingView(v *queries.SevaBookingView) *SevaBookingResponse {
	return mustCopy[SevaBookingResponse](v)
}

func FromSevaBookingPage(p *queries.SevaBookingPage) *SevaBookingListResponse {
	items := make([]*SevaBookingResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = FromSevaBookingView(it)
	}
	return &SevaBookingListResponse{TotalCount: p.TotalCount, Items: items}
}
