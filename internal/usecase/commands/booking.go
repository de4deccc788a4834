package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/clock"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	Notes     *string
	OptionIDs []uuid.UUID
}

// UpdateBookingRequest is a partial update. Nil fields are left untouched;
// a non-nil OptionIDs replaces the whole option set.
type UpdateBookingRequest struct {
	Name      *string
	Email     *string
	Phone     *string
	Date      *time.Time
	Notes     *string
	OptionIDs []uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// CreateBooking stores a pending booking and its option associations in one transaction.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resolved, err := tx.Options().ResolveActive(ctx, req.OptionIDs)
		if err != nil {
			return err
		}
		if len(resolved) == 0 {
			return errs.ErrNoValidOptions
		}

		b, err := uc.factory.CreateBooking(booking.Details{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Date:  req.Date,
			Notes: req.Notes,
		}, resolved)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, b)
		if err != nil {
			return err
		}
		if err := tx.Bookings().AddOptions(ctx, id, b.OptionIDs()); err != nil {
			return err
		}

		createdID = id
		return nil
	})
	if err != nil {
		logFailure(ctx, "create_booking", uuid.Nil, req.OptionIDs, err)
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, createdID)
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, id)
		}

		now := uc.clock.Now()
		changed := b.ApplyPatch(booking.Patch{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Date:  req.Date,
			Notes: req.Notes,
		}, now)

		if req.OptionIDs != nil {
			resolved, err := tx.Options().ResolveActive(ctx, req.OptionIDs)
			if err != nil {
				return err
			}
			if len(resolved) == 0 {
				return errs.ErrNoValidOptions
			}
			if err := b.ReplaceOptions(uc.factory.PriceCalculator, resolved, now); err != nil {
				return err
			}

			if err := tx.Bookings().RemoveOptions(ctx, id); err != nil {
				return err
			}
			if err := tx.Bookings().AddOptions(ctx, id, b.OptionIDs()); err != nil {
				return err
			}
			changed = true
		}

		if !changed {
			return nil
		}
		return notFoundOr(tx.Bookings().Update(ctx, b), id)
	})
	if err != nil {
		logFailure(ctx, "update_booking", id, req.OptionIDs, err)
		return nil, err
	}

	return uc.bookingQueries.GetByID(ctx, id)
}

// DeleteBooking removes the booking. Option associations are removed by the storage cascade.
func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundOr(tx.Bookings().Delete(ctx, id), id)
	})
	if err != nil {
		logFailure(ctx, "delete_booking", id, nil, err)
		return err
	}
	return nil
}

func notFoundOr(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NewNotFound(queries.EntityBooking, id.String())
	}
	return err
}

// logFailure records storage and unexpected failures. Client errors are not logged here.
func logFailure(ctx context.Context, operation string, bookingID uuid.UUID, optionIDs []uuid.UUID, err error) {
	if errs.IsNotFound(err) || errs.Is(err, errs.ErrNoValidOptions) {
		return
	}

	attrs := []any{
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}
	if bookingID != uuid.Nil {
		attrs = append(attrs, slog.String("booking_id", bookingID.String()))
	}
	if len(optionIDs) > 0 {
		ids := make([]string, len(optionIDs))
		for i, id := range optionIDs {
			ids[i] = id.String()
		}
		attrs = append(attrs, slog.Any("option_ids", ids))
	}
	if code := infra.ErrorCode(err); code != "" {
		attrs = append(attrs, slog.String("error_code", code))
	}

	slog.ErrorContext(ctx, "booking operation failed", attrs...)
}
