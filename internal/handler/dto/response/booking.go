package response

import (
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ReservationType []string  `json:"reservationType"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	Duration        string    `json:"duration"`
	Notes           *string   `json:"notes,omitempty"`
	Status          string    `json:"status"`
	TotalPrice      float64   `json:"totalPrice"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromBookingView flattens option ids and formats the date as YYYY-MM-DD.
// Start time and duration are not stored; they come from sched.
func FromBookingView(v *queries.BookingView, sched queries.Schedule) *BookingResponse {
	optionIDs := make([]string, len(v.OptionIDs))
	for i, id := range v.OptionIDs {
		optionIDs[i] = id.String()
	}

	return &BookingResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Email:           v.Email,
		Phone:           v.Phone,
		ReservationType: optionIDs,
		Date:            booking.FormatDate(v.ReservationDate),
		StartTime:       sched.StartTime,
		Duration:        sched.Duration,
		Notes:           v.Notes,
		Status:          v.Status,
		TotalPrice:      booking.NewMoney(v.TotalPriceCents).Float64(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v, queries.Schedule{})
	}
	return res
}
