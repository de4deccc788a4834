package queries

import (
	"context"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"

	"github.com/google/uuid"
)

const EntityBooking = "booking"

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, startDate, endDate *time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFound(EntityBooking, id.String())
		}
		return nil, err
	}
	return view, nil
}

// List returns bookings ordered by reservation date ascending, newest first within a date.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	views, err := q.store.List(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}
	if len(filter.ReservationTypes) == 0 {
		return views, nil
	}

	filtered := make([]*BookingView, 0, len(views))
	for _, v := range views {
		if v.HasAnyOption(filter.ReservationTypes) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}
