package booking

import (
	"errors"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNoOptions     = errors.New("booking requires at least one option")
	ErrNegativePrice = errors.New("price cannot be negative")
)

type Details struct {
	Name  string
	Email string
	Phone string
	Date  time.Time
	Notes *string
}

// Patch holds the fields of a partial update. Nil fields are left untouched;
// empty Notes clears the note.
type Patch struct {
	Name  *string
	Email *string
	Phone *string
	Date  *time.Time
	Notes *string
}

type Booking struct {
	id         uuid.UUID
	name       string
	email      string
	phone      string
	date       time.Time
	status     Status
	notes      *string
	optionIDs  []uuid.UUID
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	details Details,
	status Status,
	optionIDs []uuid.UUID,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		name:       details.Name,
		email:      details.Email,
		phone:      details.Phone,
		date:       details.Date,
		status:     status,
		notes:      details.Notes,
		optionIDs:  optionIDs,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ApplyPatch copies the present fields of p onto the booking and reports whether any were present.
func (b *Booking) ApplyPatch(p Patch, now time.Time) bool {
	changed := patch.Set(&b.name, p.Name)
	changed = patch.Set(&b.email, p.Email) || changed
	changed = patch.Set(&b.phone, p.Phone) || changed
	changed = patch.Set(&b.date, p.Date) || changed
	changed = patch.SetOrClear(&b.notes, p.Notes) || changed

	if changed {
		b.updatedAt = now
	}
	return changed
}

// ReplaceOptions swaps the whole option set and recomputes the total from it.
func (b *Booking) ReplaceOptions(calc PriceCalculator, options []OptionPrice, now time.Time) error {
	if len(options) == 0 {
		return ErrNoOptions
	}

	total := calc.Total(options)
	if total.IsNegative() {
		return ErrNegativePrice
	}

	b.optionIDs = OptionIDs(options)
	b.totalPrice = total
	b.updatedAt = now
	return nil
}

func (b *Booking) HasOption(id uuid.UUID) bool {
	for _, o := range b.optionIDs {
		if o == id {
			return true
		}
	}
	return false
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Name() string           { return b.name }
func (b *Booking) Email() string          { return b.email }
func (b *Booking) Phone() string          { return b.phone }
func (b *Booking) Date() time.Time        { return b.date }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Notes() *string         { return b.notes }
func (b *Booking) OptionIDs() []uuid.UUID { return b.optionIDs }
func (b *Booking) TotalPrice() Money      { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
