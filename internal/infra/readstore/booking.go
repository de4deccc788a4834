package readstore

import (
	"context"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/pgconv"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingWithOptions, error)
	ListBookings(ctx context.Context, db query.DBTX, arg query.ListBookingsParams) ([]query.BookingWithOptions, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, startDate, endDate *time.Time) ([]*queries.BookingView, error) {
	params := query.ListBookingsParams{
		StartDate: pgconv.DatePtrToPgtype(startDate),
		EndDate:   pgconv.DatePtrToPgtype(endDate),
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		view, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToBookingView(row query.BookingWithOptions) (*queries.BookingView, error) {
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}

	return &queries.BookingView{
		ID:              row.ID,
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		ReservationDate: pgconv.DateFromPgtype(row.ReservationDate),
		Status:          row.Status,
		Notes:           pgconv.StringPtrFromPgtype(row.Notes),
		OptionIDs:       pgconv.UUIDsFromPgtype(row.OptionIDs),
		TotalPriceCents: total,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
