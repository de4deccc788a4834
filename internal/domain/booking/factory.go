package booking

import (
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/clock"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/patch"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking builds a pending booking priced from the resolved options.
func (f *Factory) CreateBooking(details Details, options []OptionPrice) (*Booking, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	total := f.PriceCalculator.Total(options)
	if total.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := f.Clock.Now()
	return &Booking{
		id:         uuid.New(),
		name:       details.Name,
		email:      details.Email,
		phone:      details.Phone,
		date:       details.Date,
		status:     StatusPending,
		notes:      patch.NonZero(details.Notes),
		optionIDs:  OptionIDs(options),
		totalPrice: total,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
