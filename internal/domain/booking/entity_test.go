//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/clock"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumPriceCalculator(t *testing.T) {
	calc := booking.NewSumPriceCalculator()

	tests := []struct {
		name    string
		options []booking.OptionPrice
		want    int64
	}{
		{name: "empty list totals zero", options: nil, want: 0},
		{
			name:    "single option",
			options: []booking.OptionPrice{{ID: uuid.New(), Price: booking.NewMoney(5000)}},
			want:    5000,
		},
		{
			name: "sums every option",
			options: []booking.OptionPrice{
				{ID: uuid.New(), Price: booking.NewMoney(5000)},
				{ID: uuid.New(), Price: booking.NewMoney(2550)},
				{ID: uuid.New(), Price: booking.MoneyFromFloat(0.45)},
			},
			want: 7595,
		},
		{
			name: "free options",
			options: []booking.OptionPrice{
				{ID: uuid.New(), Price: booking.NewMoney(0)},
				{ID: uuid.New(), Price: booking.NewMoney(0)},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Total(tt.options).Cents())
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(4995), booking.MoneyFromFloat(49.95).Cents())
	assert.Equal(t, int64(10), booking.MoneyFromFloat(0.1).Cents())
	assert.InDelta(t, 49.95, booking.NewMoney(4995).Float64(), 1e-9)
	assert.True(t, booking.NewMoney(-1).IsNegative())
	assert.False(t, booking.NewMoney(0).IsNegative())
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2025-06-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-06-14", booking.FormatDate(d))

	for _, in := range []string{"", "14-06-2025", "2025-13-01", "2025-06-14T10:00:00Z"} {
		_, err := booking.ParseDate(in)
		assert.ErrorIs(t, err, booking.ErrInvalidDate, in)
	}
}

func TestFactory_CreateBooking(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewFixedClock(now), booking.NewSumPriceCalculator())
	pool := uuid.New()
	bbq := uuid.New()

	t.Run("pending booking priced from options", func(t *testing.T) {
		notes := "Verjaardag"
		b, err := factory.CreateBooking(booking.Details{
			Name:  "Jan",
			Email: "jan@example.com",
			Phone: "0470123456",
			Date:  time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			Notes: &notes,
		}, []booking.OptionPrice{
			{ID: pool, Price: booking.NewMoney(5000)},
			{ID: bbq, Price: booking.NewMoney(2500)},
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(7500), b.TotalPrice().Cents())
		assert.Equal(t, []uuid.UUID{pool, bbq}, b.OptionIDs())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
		require.NotNil(t, b.Notes())
		assert.Equal(t, "Verjaardag", *b.Notes())
	})

	t.Run("empty notes are stored as absent", func(t *testing.T) {
		empty := ""
		b, err := factory.CreateBooking(booking.Details{Name: "Jan", Notes: &empty}, []booking.OptionPrice{
			{ID: pool, Price: booking.NewMoney(5000)},
		})
		require.NoError(t, err)
		assert.Nil(t, b.Notes())
	})

	t.Run("no options", func(t *testing.T) {
		_, err := factory.CreateBooking(booking.Details{Name: "Jan"}, nil)
		assert.ErrorIs(t, err, booking.ErrNoOptions)
	})

	t.Run("negative total", func(t *testing.T) {
		_, err := factory.CreateBooking(booking.Details{Name: "Jan"}, []booking.OptionPrice{
			{ID: pool, Price: booking.NewMoney(-100)},
		})
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestBooking_ApplyPatch(t *testing.T) {
	later := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("empty patch changes nothing", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		before := b.UpdatedAt()

		assert.False(t, b.ApplyPatch(booking.Patch{}, later))
		assert.Equal(t, before, b.UpdatedAt())
	})

	t.Run("present fields are copied", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithNotes("oud").BuildDomain()
		name := "Piet"
		notes := "nieuw"
		date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

		assert.True(t, b.ApplyPatch(booking.Patch{Name: &name, Notes: &notes, Date: &date}, later))

		assert.Equal(t, "Piet", b.Name())
		assert.Equal(t, "jan@example.com", b.Email())
		assert.Equal(t, "0470123456", b.Phone())
		assert.Equal(t, date, b.Date())
		assert.Equal(t, "nieuw", *b.Notes())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("empty notes clear the note", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithNotes("oud").BuildDomain()
		empty := ""

		assert.True(t, b.ApplyPatch(booking.Patch{Notes: &empty}, later))
		assert.Nil(t, b.Notes())
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("options and price are untouched", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()
		name := "Piet"

		b.ApplyPatch(booking.Patch{Name: &name}, later)

		assert.Equal(t, bb.OptionIDs(), b.OptionIDs())
		assert.Equal(t, bb.Total(), b.TotalPrice())
	})
}

func TestBooking_ReplaceOptions(t *testing.T) {
	later := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)
	calc := booking.NewSumPriceCalculator()
	a := builder.NewOptionBuilder().With(func(o *builder.OptionBuilder) { o.PriceCents = 5000 }).BuildPrice()
	c := builder.NewOptionBuilder().With(func(o *builder.OptionBuilder) { o.PriceCents = 5000 }).BuildPrice()

	t.Run("replaces set and recomputes total", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, b.ReplaceOptions(calc, []booking.OptionPrice{a, c}, later))

		assert.Equal(t, []uuid.UUID{a.ID, c.ID}, b.OptionIDs())
		assert.Equal(t, int64(10000), b.TotalPrice().Cents())
		assert.True(t, b.HasOption(a.ID))
		assert.Equal(t, later, b.UpdatedAt())
	})

	t.Run("empty set is rejected", func(t *testing.T) {
		bb := builder.NewBookingBuilder()
		b := bb.BuildDomain()

		assert.ErrorIs(t, b.ReplaceOptions(calc, nil, later), booking.ErrNoOptions)
		assert.Equal(t, bb.OptionIDs(), b.OptionIDs())
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.True(t, booking.StatusCancelled.IsValid())
	assert.False(t, booking.Status("archived").IsValid())
	assert.Equal(t, "pending", booking.StatusPending.String())
}
