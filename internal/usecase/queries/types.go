package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is a booking joined with the ids of its options.
type BookingView struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	ReservationDate time.Time   `json:"reservation_date"`
	Status          string      `json:"status"`
	Notes           *string     `json:"notes,omitempty"`
	OptionIDs       []uuid.UUID `json:"option_ids"`
	TotalPriceCents int64       `json:"total_price_cents"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (v *BookingView) HasAnyOption(ids []uuid.UUID) bool {
	for _, want := range ids {
		for _, have := range v.OptionIDs {
			if have == want {
				return true
			}
		}
	}
	return false
}

type OptionView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Active      bool      `json:"active"`
	SortOrder   int32     `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingFilter narrows a booking listing. Date bounds are inclusive.
// A booking matches ReservationTypes when it has at least one of them.
type BookingFilter struct {
	StartDate        *time.Time
	EndDate          *time.Time
	ReservationTypes []uuid.UUID
}
