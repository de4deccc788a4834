package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	ID      uuid.UUID
	Title   string
	Start   time.Time
	End     time.Time
	AllDay  bool
	Booking *BookingView
}

// Schedule carries the start time ("HH:MM") and duration in hours ("1.5")
// sent with a create or update. Neither is persisted; responses echo them back.
type Schedule struct {
	StartTime string
	Duration  string
}

type CalendarQueries interface {
	Events(ctx context.Context, filter BookingFilter) ([]CalendarEvent, error)
}

type calendarQueriesImpl struct {
	bookings BookingQueries
	loc      *time.Location
}

func NewCalendarQueries(bookings BookingQueries, loc *time.Location) CalendarQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &calendarQueriesImpl{bookings: bookings, loc: loc}
}

func (q *calendarQueriesImpl) Events(ctx context.Context, filter BookingFilter) ([]CalendarEvent, error) {
	views, err := q.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, len(views))
	for i, v := range views {
		events[i] = ToCalendarEvent(v, q.loc)
	}
	return events, nil
}

// ToCalendarEvent projects a booking onto the calendar as an all-day event in
// loc. Start times are not stored, so there is nothing to place it by.
func ToCalendarEvent(v *BookingView, loc *time.Location) CalendarEvent {
	day := time.Date(v.ReservationDate.Year(), v.ReservationDate.Month(), v.ReservationDate.Day(), 0, 0, 0, 0, loc)
	return CalendarEvent{
		ID:      v.ID,
		Title:   calendarTitle(v),
		Start:   day,
		End:     day.AddDate(0, 0, 1).Add(-time.Millisecond),
		AllDay:  true,
		Booking: v,
	}
}

func calendarTitle(v *BookingView) string {
	if len(v.OptionIDs) == 0 {
		return v.Name
	}
	return fmt.Sprintf("%s - %d optie(s)", v.Name, len(v.OptionIDs))
}
