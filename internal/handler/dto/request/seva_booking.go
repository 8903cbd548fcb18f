package request

import (
	"temple-booking/internal/domain/seva"
	"temple-booking/internal/pkg/errs"
	"temple-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateSevaBookingRequest struct {
	SevaID   uuid.UUID  `json:"seva_id" binding:"required"`
	SevaDate string     `json:"seva_date" binding:"required,datetime=2006-01-02"`
	Name     string     `json:"name" binding:"required,max=200"`
	MobileNo string     `json:"mobile_no" binding:"required,min=10,max=15"`
	GotraID  *uuid.UUID `json:"gotra_id"`
	Address  *string    `json:"address" binding:"omitempty,max=500"`
	Remarks  *string    `json:"remarks" binding:"omitempty,max=500"`
}

func (r CreateSevaBookingRequest) ToParams() (seva.NewBookingParams, error) {
	d, err := ParseDate(r.SevaDate)
	if err != nil {
		return seva.NewBookingParams{}, err
	}
	return seva.NewBookingParams{
		SevaID:   r.SevaID,
		SevaDate: d,
		Name:     r.Name,
		MobileNo: r.MobileNo,
		GotraID:  r.GotraID,
		Address:  r.Address,
		Remarks:  r.Remarks,
	}, nil
}

var ErrInvalidGotraID = errs.Validation("gotra_id must be a UUID")

// UpdateSevaBookingRequest is a partial update. An empty gotra_id, address or
// remarks clears the stored value.
type UpdateSevaBookingRequest struct {
	SevaID   *uuid.UUID `json:"seva_id"`
	SevaDate *string    `json:"seva_date" binding:"omitempty,datetime=2006-01-02"`
	Name     *string    `json:"name" binding:"omitempty,max=200"`
	MobileNo *string    `json:"mobile_no" binding:"omitempty,min=10,max=15"`
	GotraID  *string    `json:"gotra_id" binding:"omitempty,uuid"`
	Address  *string    `json:"address" binding:"omitempty,max=500"`
	Remarks  *string    `json:"remarks" binding:"omitempty,max=500"`
}

func (r UpdateSevaBookingRequest) ToPatch() (seva.BookingPatch, error) {
	d, err := parseOptionalDate(r.SevaDate)
	if err != nil {
		return seva.BookingPatch{}, err
	}
	p := seva.BookingPatch{
		SevaID:   r.SevaID,
		SevaDate: d,
		Name:     r.Name,
		MobileNo: r.MobileNo,
		Address:  r.Address,
		Remarks:  r.Remarks,
	}
	if r.GotraID != nil {
		if *r.GotraID == "" {
			p.ClearGotra = true
		} else {
			id, err := uuid.Parse(*r.GotraID)
			if err != nil {
				return seva.BookingPatch{}, errs.WithCause(ErrInvalidGotraID, err)
			}
			p.GotraID = &id
		}
	}
	return p, nil
}

type UpdateSevaBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListSevaBookingsQuery struct {
	ListQuery
	MobileNo *string `form:"mobile_no"`
	SevaDate *string `form:"seva_date" binding:"omitempty,datetime=2006-01-02"`
}

func (q ListSevaBookingsQuery) ToFilter() (queries.SevaBookingFilter, error) {
	d, err := parseOptionalDate(q.SevaDate)
	if err != nil {
		return queries.SevaBookingFilter{}, err
	}
	return queries.SevaBookingFilter{MobileNo: q.MobileNo, SevaDate: d}, nil
}

// DateRangeQuery bounds aggregations by seva date. Both ends are optional.
type DateRangeQuery struct {
	StartDate *string `form:"start_date" json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"end_date" json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (q DateRangeQuery) ToFilter() (seva.DateFilter, error) {
	var (
		f   seva.DateFilter
		err error
	)
	if f.From, err = parseOptionalDate(q.StartDate); err != nil {
		return seva.DateFilter{}, err
	}
	if f.To, err = parseOptionalDate(q.EndDate); err != nil {
		return seva.DateFilter{}, err
	}
	return f, nil
}

type ByServiceQuery struct {
	DateRangeQuery
	SevaID string `form:"seva_id" binding:"required,uuid"`
}

type SelectionRequest struct {
	DateRangeQuery
	SevaIDs []uuid.UUID `json:"seva_ids"`
}
