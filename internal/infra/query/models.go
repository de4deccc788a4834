package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID                    uuid.UUID
	Name                  string
	Email                 string
	Phone                 string
	ReservationDate       pgtype.Date
	Status                string
	GoogleCalendarEventID pgtype.Text
	Notes                 pgtype.Text
	TotalPrice            pgtype.Numeric
	CreatedAt             pgtype.Timestamptz
	UpdatedAt             pgtype.Timestamptz
}

// BookingWithOptions is a booking row joined with its option ids,
// ordered by option sort order.
type BookingWithOptions struct {
	Booking
	OptionIDs []pgtype.UUID
}

type Option struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	Price       pgtype.Numeric
	Active      bool
	SortOrder   int32
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type OptionPrice struct {
	ID    uuid.UUID
	Price pgtype.Numeric
}
