package request

import "github.com/google/uuid"

type CalendarFilter struct {
	ResourceID       *string `form:"resource_id" binding:"omitempty,uuid"`
	IncludeCancelled bool    `form:"include_cancelled"`
}

func (f CalendarFilter) ResourceUUID() *uuid.UUID {
	return parseOptionalUUID(f.ResourceID)
}

type CalendarDayQuery struct {
	CalendarFilter
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type CalendarWeekQuery struct {
	CalendarFilter
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

type CalendarMonthQuery struct {
	CalendarFilter
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}
