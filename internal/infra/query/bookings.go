package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBooking = `
INSERT INTO bookings (
    id, name, email, phone, reservation_date, status, notes, total_price, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6::booking_status, $7, $8, $9, $10
)
RETURNING id
`

type InsertBookingParams struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	ReservationDate pgtype.Date
	Status          string
	Notes           pgtype.Text
	TotalPrice      pgtype.Numeric
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, insertBooking,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.ReservationDate,
		arg.Status,
		arg.Notes,
		arg.TotalPrice,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateBooking = `
UPDATE bookings
SET name = $2,
    email = $3,
    phone = $4,
    reservation_date = $5,
    notes = $6,
    total_price = $7,
    updated_at = $8
WHERE id = $1
`

type UpdateBookingParams struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	ReservationDate pgtype.Date
	Notes           pgtype.Text
	TotalPrice      pgtype.Numeric
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	result, err := db.Exec(ctx, updateBooking,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.ReservationDate,
		arg.Notes,
		arg.TotalPrice,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBooking = `
DELETE FROM bookings WHERE id = $1
`

// DeleteBooking removes the booking; booking_options rows go with it via ON DELETE CASCADE.
func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteBookingOptions = `
DELETE FROM booking_options WHERE booking_id = $1
`

func (q *Queries) DeleteBookingOptions(ctx context.Context, db DBTX, bookingID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteBookingOptions, bookingID)
	return err
}

const insertBookingOptions = `
INSERT INTO booking_options (booking_id, option_id)
SELECT $1, unnest($2::uuid[])
`

func (q *Queries) InsertBookingOptions(ctx context.Context, db DBTX, bookingID uuid.UUID, optionIDs []pgtype.UUID) error {
	_, err := db.Exec(ctx, insertBookingOptions, bookingID, optionIDs)
	return err
}

const bookingWithOptionsColumns = `
    b.id, b.name, b.email, b.phone, b.reservation_date, b.status::text,
    b.google_calendar_event_id, b.notes, b.total_price, b.created_at, b.updated_at,
    COALESCE(
        array_agg(o.id ORDER BY o.sort_order, o.id) FILTER (WHERE o.id IS NOT NULL),
        '{}'
    )::uuid[] AS option_ids
FROM bookings b
LEFT JOIN booking_options bo ON bo.booking_id = b.id
LEFT JOIN options o ON o.id = bo.option_id
`

const getBookingByID = `
SELECT` + bookingWithOptionsColumns + `
WHERE b.id = $1
GROUP BY b.id
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingWithOptions, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	return scanBookingWithOptions(row)
}

const lockBooking = `
SELECT id FROM bookings
WHERE id = $1
FOR UPDATE
`

// LockBooking holds the booking row until db's transaction ends. It returns
// pgx.ErrNoRows when the booking does not exist.
func (q *Queries) LockBooking(ctx context.Context, db DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	return db.QueryRow(ctx, lockBooking, id).Scan(&locked)
}

const listBookings = `
SELECT` + bookingWithOptionsColumns + `
WHERE ($1::date IS NULL OR b.reservation_date >= $1::date)
  AND ($2::date IS NULL OR b.reservation_date <= $2::date)
GROUP BY b.id
ORDER BY b.reservation_date ASC, b.created_at DESC
`

// Invalid (NULL) bounds are ignored.
type ListBookingsParams struct {
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]BookingWithOptions, error) {
	rows, err := db.Query(ctx, listBookings, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []BookingWithOptions{}
	for rows.Next() {
		i, err := scanBookingWithOptions(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanBookingWithOptions(row pgx.Row) (BookingWithOptions, error) {
	var i BookingWithOptions
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.ReservationDate,
		&i.Status,
		&i.GoogleCalendarEventID,
		&i.Notes,
		&i.TotalPrice,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.OptionIDs,
	)
	return i, err
}
