package queries

import (
	"context"
	"time"

	"temple-booking/internal/domain/calendar"
	"temple-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type CalendarReadStore interface {
	FindInWindow(ctx context.Context, window reservation.DateRange, resourceID *uuid.UUID, includeCancelled bool) ([]calendar.Entry, error)
}

type CalendarQueries interface {
	Day(ctx context.Context, date time.Time, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error)
	Week(ctx context.Context, start, end time.Time, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error)
	Month(ctx context.Context, year, month int, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error)
}

type calendarQueriesImpl struct {
	repo CalendarReadStore
}

func NewCalendarQueries(repo CalendarReadStore) CalendarQueries {
	return &calendarQueriesImpl{repo: repo}
}

func (q *calendarQueriesImpl) Day(ctx context.Context, date time.Time, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error) {
	return q.build(ctx, calendar.Day(date), resourceID, includeCancelled)
}

func (q *calendarQueriesImpl) Week(ctx context.Context, start, end time.Time, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error) {
	w, err := calendar.Week(start, end)
	if err != nil {
		return nil, err
	}
	return q.build(ctx, w, resourceID, includeCancelled)
}

func (q *calendarQueriesImpl) Month(ctx context.Context, year, month int, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error) {
	w, err := calendar.Month(year, month)
	if err != nil {
		return nil, err
	}
	return q.build(ctx, w, resourceID, includeCancelled)
}

func (q *calendarQueriesImpl) build(ctx context.Context, w calendar.Window, resourceID *uuid.UUID, includeCancelled bool) (*calendar.View, error) {
	entries, err := q.repo.FindInWindow(ctx, w.Dates(), resourceID, includeCancelled)
	if err != nil {
		return nil, err
	}
	v := calendar.Project(w, entries, includeCancelled)
	return &v, nil
}
