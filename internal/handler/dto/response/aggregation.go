package response

import (
	"time"

	"temple-booking/internal/domain/seva"

	"github.com/google/uuid"
)

// FiltersResponse echoes the seva date window an aggregation was computed over.
// An open end is null.
type FiltersResponse struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

type BookingLineResponse struct {
	ID          uuid.UUID   `json:"id"`
	ReceiptDate string      `json:"receipt_date"`
	SevaDate    string      `json:"seva_date"`
	SevaID      uuid.UUID   `json:"seva_id"`
	SevaName    string      `json:"seva_name"`
	SevaAmount  *seva.Money `json:"seva_amount"`
	Name        string      `json:"name"`
	MobileNo    string      `json:"mobile_no"`
	GotraName   *string     `json:"gotra_name,omitempty"`
	Address     *string     `json:"address,omitempty"`
	Remarks     *string     `json:"remarks,omitempty"`
	Status      string      `json:"status"`
}

type ServiceSummaryResponse struct {
	SevaID      uuid.UUID             `json:"seva_id"`
	SevaName    string                `json:"seva_name"`
	SevaAmount  *seva.Money           `json:"seva_amount"`
	Count       int                   `json:"count"`
	TotalAmount seva.Money            `json:"total_amount"`
	Filters     FiltersResponse       `json:"filters"`
	Bookings    []BookingLineResponse `json:"bookings"`
}

type ServiceCountResponse struct {
	SevaID   uuid.UUID `json:"seva_id"`
	SevaName string    `json:"seva_name"`
	Count    int       `json:"count"`
}

type DateEntryResponse struct {
	Date        string                 `json:"date"`
	Count       int                    `json:"count"`
	TotalAmount seva.Money             `json:"total_amount"`
	Services    []ServiceCountResponse `json:"services"`
	Bookings    []BookingLineResponse  `json:"bookings"`
}

type DateAggregationResponse struct {
	Filters FiltersResponse     `json:"filters"`
	Data    []DateEntryResponse `json:"data"`
}

type SevaTotalResponse struct {
	SevaID      uuid.UUID   `json:"seva_id"`
	SevaName    string      `json:"seva_name"`
	SevaAmount  *seva.Money `json:"seva_amount"`
	Count       int         `json:"count"`
	TotalAmount seva.Money  `json:"total_amount"`
}

type DateTotalResponse struct {
	Date        string     `json:"date"`
	Count       int        `json:"count"`
	TotalAmount seva.Money `json:"total_amount"`
}

type SelectionResponse struct {
	SevaIDs     []uuid.UUID           `json:"seva_ids"`
	Filters     FiltersResponse       `json:"filters"`
	TotalCount  int                   `json:"total_count"`
	TotalAmount seva.Money            `json:"total_amount"`
	BySeva      []SevaTotalResponse   `json:"by_seva"`
	ByDate      []DateTotalResponse   `json:"by_date"`
	Bookings    []BookingLineResponse `json:"bookings"`
}

func FromDateFilter(f seva.DateFilter) FiltersResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		d := formatDate(*t)
		return &d
	}
	return FiltersResponse{StartDate: format(f.From), EndDate: format(f.To)}
}

func fromLines(lines []seva.Line) []BookingLineResponse {
	out := make([]BookingLineResponse, len(lines))
	for i, l := range lines {
		out[i] = BookingLineResponse{
			ID:          l.BookingID,
			ReceiptDate: formatDate(l.ReceiptDate),
			SevaDate:    formatDate(l.SevaDate),
			SevaID:      l.SevaID,
			SevaName:    l.SevaName,
			SevaAmount:  l.SevaAmount,
			Name:        l.Name,
			MobileNo:    l.MobileNo,
			GotraName:   l.GotraName,
			Address:     l.Address,
			Remarks:     l.Remarks,
			Status:      string(l.Status),
		}
	}
	return out
}

func FromServiceSummary(s *seva.ServiceSummary, filter seva.DateFilter) *ServiceSummaryResponse {
	return &ServiceSummaryResponse{
		SevaID:      s.SevaID,
		SevaName:    s.SevaName,
		SevaAmount:  s.SevaAmount,
		Count:       s.Count,
		TotalAmount: s.TotalAmount,
		Filters:     FromDateFilter(filter),
		Bookings:    fromLines(s.Bookings),
	}
}

func FromDateEntries(entries []seva.DateEntry, filter seva.DateFilter) *DateAggregationResponse {
	out := make([]DateEntryResponse, len(entries))
	for i, e := range entries {
		services := make([]ServiceCountResponse, len(e.Services))
		for j, svc := range e.Services {
			services[j] = *mustCopy[ServiceCountResponse](svc)
		}
		out[i] = DateEntryResponse{
			Date:        formatDate(e.Date),
			Count:       e.Count,
			TotalAmount: e.TotalAmount,
			Services:    services,
			Bookings:    fromLines(e.Bookings),
		}
	}
	return &DateAggregationResponse{Filters: FromDateFilter(filter), Data: out}
}

func FromSelection(s *seva.Selection, filter seva.DateFilter) *SelectionResponse {
	bySeva := make([]SevaTotalResponse, len(s.BySeva))
	for i, t := range s.BySeva {
		bySeva[i] = *mustCopy[SevaTotalResponse](t)
	}
	byDate := make([]DateTotalResponse, len(s.ByDate))
	for i, t := range s.ByDate {
		byDate[i] = *mustCopy[DateTotalResponse](t)
	}
	ids := s.SevaIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &SelectionResponse{
		SevaIDs:     ids,
		Filters:     FromDateFilter(filter),
		TotalCount:  s.TotalCount,
		TotalAmount: s.TotalAmount,
		BySeva:      bySeva,
		ByDate:      byDate,
		Bookings:    fromLines(s.Bookings),
	}
}
