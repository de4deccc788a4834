package response

import (
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"
)

type CalendarEventResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end"`
	AllDay  bool             `json:"allDay"`
	Booking *BookingResponse `json:"booking"`
}

func FromCalendarEvents(events []queries.CalendarEvent) []*CalendarEventResponse {
	res := make([]*CalendarEventResponse, len(events))
	for i, e := range events {
		res[i] = &CalendarEventResponse{
			ID:      e.ID.String(),
			Title:   e.Title,
			Start:   e.Start,
			End:     e.End,
			AllDay:  e.AllDay,
			Booking: FromBookingView(e.Booking, queries.Schedule{}),
		}
	}
	return res
}
