//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference options seeded by SeedReferenceData.
var (
	OptionPoolID     = uuid.MustParse("6f1c2a7e-1d2b-4c3a-9e4f-0a1b2c3d4e01")
	OptionBBQID      = uuid.MustParse("6f1c2a7e-1d2b-4c3a-9e4f-0a1b2c3d4e02")
	OptionSaunaID    = uuid.MustParse("6f1c2a7e-1d2b-4c3a-9e4f-0a1b2c3d4e03")
	OptionInactiveID = uuid.MustParse("6f1c2a7e-1d2b-4c3a-9e4f-0a1b2c3d4e04")
)

func CreateTestOption(t *testing.T, db DBLike, name string, price string, active bool, sortOrder int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO options (name, price, active, sort_order) VALUES ($1, $2::numeric, $3, $4) RETURNING id",
		name, price, active, sortOrder).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestBooking inserts a booking directly, bypassing the API.
func CreateTestBooking(t *testing.T, db DBLike, name, date, totalPrice string, optionIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (name, email, phone, reservation_date, total_price)
		VALUES ($1, $2, '0470123456', $3::date, $4::numeric)
		RETURNING id`,
		name, strings.ToLower(strings.ReplaceAll(name, " ", "."))+"@example.com", date, totalPrice).Scan(&id)
	require.NoError(t, err)

	for _, optionID := range optionIDs {
		_, err := db.Exec(ctx, "INSERT INTO booking_options (booking_id, option_id) VALUES ($1, $2)", id, optionID)
		require.NoError(t, err)
	}
	return id
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM bookings").Scan(&n))
	return n
}

func CountBookingOptions(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_options WHERE booking_id = $1", bookingID).Scan(&n))
	return n
}

// BookingNotes returns the stored notes column; nil means NULL.
func BookingNotes(t *testing.T, db DBLike, bookingID uuid.UUID) *string {
	t.Helper()

	var notes *string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT notes FROM bookings WHERE id = $1", bookingID).Scan(&notes))
	return notes
}

// SeedReferenceData inserts the reference options; it is safe to call repeatedly.
func SeedReferenceData(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, `
		INSERT INTO options (id, name, description, price, active, sort_order) VALUES
		    ($1, 'Zwembad', 'Gebruik van het zwembad', 50.00, true, 1),
		    ($2, 'BBQ', NULL, 25.00, true, 2),
		    ($3, 'Sauna', NULL, 50.00, true, 3),
		    ($4, 'Oud arrangement', NULL, 10.00, false, 4)
		ON CONFLICT (id) DO NOTHING;
	`, OptionPoolID, OptionBBQID, OptionSaunaID, OptionInactiveID)
	return err
}

// ResetDB empties every booking table and reseeds the reference options.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, "TRUNCATE booking_options, bookings, options CASCADE"); err != nil {
		return err
	}
	return SeedReferenceData(db)
}
