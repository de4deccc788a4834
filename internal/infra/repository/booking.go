package repository

import (
	"context"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingWithOptions, error)
	LockBooking(ctx context.Context, db query.DBTX, id uuid.UUID) error
	InsertBooking(ctx context.Context, db query.DBTX, arg query.InsertBookingParams) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, db query.DBTX, arg query.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	InsertBookingOptions(ctx context.Context, db query.DBTX, bookingID uuid.UUID, optionIDs []pgtype.UUID) error
	DeleteBookingOptions(ctx context.Context, db query.DBTX, bookingID uuid.UUID) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// FindByID locks the booking row before reading it, so concurrent updates of
// one booking run one after the other. The read is a separate statement and
// therefore sees whatever the previous lock holder committed.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.queries.LockBooking(ctx, r.db, id); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToDomain(row)
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	params := query.InsertBookingParams{
		ID:              b.ID(),
		Name:            b.Name(),
		Email:           b.Email(),
		Phone:           b.Phone(),
		ReservationDate: pgconv.DateToPgtype(b.Date()),
		Status:          b.Status().String(),
		Notes:           pgconv.StringPtrToPgtype(b.Notes()),
		TotalPrice:      pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	id, err := r.queries.InsertBooking(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	params := query.UpdateBookingParams{
		ID:              b.ID(),
		Name:            b.Name(),
		Email:           b.Email(),
		Phone:           b.Phone(),
		ReservationDate: pgconv.DateToPgtype(b.Date()),
		Notes:           pgconv.StringPtrToPgtype(b.Notes()),
		TotalPrice:      pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	affected, err := r.queries.UpdateBooking(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) AddOptions(ctx context.Context, bookingID uuid.UUID, optionIDs []uuid.UUID) error {
	if len(optionIDs) == 0 {
		return nil
	}
	if err := r.queries.InsertBookingOptions(ctx, r.db, bookingID, pgconv.UUIDsToPgtype(optionIDs)); err != nil {
		return infra.WrapRepoErr("failed to add booking options", err)
	}
	return nil
}

func (r *BookingRepository) RemoveOptions(ctx context.Context, bookingID uuid.UUID) error {
	if err := r.queries.DeleteBookingOptions(ctx, r.db, bookingID); err != nil {
		return infra.WrapRepoErr("failed to remove booking options", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBooking(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func rowToDomain(row query.BookingWithOptions) (*booking.Booking, error) {
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}

	details := booking.Details{
		Name:  row.Name,
		Email: row.Email,
		Phone: row.Phone,
		Date:  pgconv.DateFromPgtype(row.ReservationDate),
		Notes: pgconv.StringPtrFromPgtype(row.Notes),
	}
	return booking.ReconstructBooking(
		row.ID,
		details,
		booking.Status(row.Status),
		pgconv.UUIDsFromPgtype(row.OptionIDs),
		booking.NewMoney(total),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
