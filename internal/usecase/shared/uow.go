package shared

import (
	"context"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks.
	// Any error returned by fn rolls the whole transaction back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Options() OptionResolver
}

type BookingRepository interface {
	// FindByID locks the booking for the rest of the transaction. It fails with
	// a NOT_FOUND repository error when the booking does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, b *booking.Booking) error
	// AddOptions associates optionIDs with the booking.
	AddOptions(ctx context.Context, bookingID uuid.UUID, optionIDs []uuid.UUID) error
	// RemoveOptions drops every option association of the booking.
	RemoveOptions(ctx context.Context, bookingID uuid.UUID) error
	// Delete fails with a NOT_FOUND repository error when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

type OptionResolver interface {
	// ResolveActive returns the active options among ids, silently dropping unknown or inactive ones.
	ResolveActive(ctx context.Context, ids []uuid.UUID) ([]booking.OptionPrice, error)
}
