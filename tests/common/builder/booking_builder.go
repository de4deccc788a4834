//go:build unit || e2e

package builder

import (
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	reqdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/request"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/pgconv"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	StartTime string
	Duration  string
	Status    booking.Status
	Notes     *string
	Options   []booking.OptionPrice
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		Name:      "Jan Janssens",
		Email:     "jan@example.com",
		Phone:     "0470123456",
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		Duration:  "2",
		Status:    booking.StatusPending,
		Options: []booking.OptionPrice{
			{ID: uuid.New(), Price: booking.NewMoney(5000)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		booking.Details{Name: b.Name, Email: b.Email, Phone: b.Phone, Date: b.Date, Notes: b.Notes},
		b.Status,
		b.OptionIDs(),
		b.Total(),
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() query.BookingWithOptions {
	return query.BookingWithOptions{
		Booking: query.Booking{
			ID:              b.ID,
			Name:            b.Name,
			Email:           b.Email,
			Phone:           b.Phone,
			ReservationDate: pgconv.DateToPgtype(b.Date),
			Status:          b.Status.String(),
			Notes:           pgconv.StringPtrToPgtype(b.Notes),
			TotalPrice:      pgconv.CentsToNumeric(b.Total().Cents()),
			CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
			UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt),
		},
		OptionIDs: pgconv.UUIDsToPgtype(b.OptionIDs()),
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		ReservationDate: b.Date,
		Status:          b.Status.String(),
		Notes:           b.Notes,
		OptionIDs:       b.OptionIDs(),
		TotalPriceCents: b.Total().Cents(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		ReservationType: b.optionIDStrings(),
		Date:            booking.FormatDate(b.Date),
		StartTime:       b.StartTime,
		Duration:        b.Duration,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	name := b.Name
	ids := b.optionIDStrings()
	return reqdto.UpdateBookingRequest{
		Name:            &name,
		ReservationType: &ids,
	}
}

func (b *BookingBuilder) OptionIDs() []uuid.UUID {
	return booking.OptionIDs(b.Options)
}

func (b *BookingBuilder) Total() booking.Money {
	return booking.NewSumPriceCalculator().Total(b.Options)
}

func (b *BookingBuilder) optionIDStrings() []string {
	ids := make([]string, len(b.Options))
	for i, o := range b.Options {
		ids[i] = o.ID.String()
	}
	return ids
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) WithOptions(options ...booking.OptionPrice) *BookingBuilder {
	b.Options = options
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

type OptionBuilder struct {
	ID          uuid.UUID
	Name        string
	Description *string
	PriceCents  int64
	Active      bool
	SortOrder   int32
	CreatedAt   time.Time
}

func NewOptionBuilder() *OptionBuilder {
	return &OptionBuilder{
		ID:         uuid.New(),
		Name:       "Zwembad",
		PriceCents: 5000,
		Active:     true,
		SortOrder:  1,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (o *OptionBuilder) With(mutate func(*OptionBuilder)) *OptionBuilder {
	mutate(o)
	return o
}

func (o *OptionBuilder) BuildPrice() booking.OptionPrice {
	return booking.OptionPrice{ID: o.ID, Price: booking.NewMoney(o.PriceCents)}
}

func (o *OptionBuilder) BuildInfra() query.Option {
	return query.Option{
		ID:          o.ID,
		Name:        o.Name,
		Description: pgconv.StringPtrToPgtype(o.Description),
		Price:       pgconv.CentsToNumeric(o.PriceCents),
		Active:      o.Active,
		SortOrder:   o.SortOrder,
		CreatedAt:   pgconv.TimeToPgtype(o.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(o.CreatedAt),
	}
}

func (o *OptionBuilder) BuildView() *queries.OptionView {
	return &queries.OptionView{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		PriceCents:  o.PriceCents,
		Active:      o.Active,
		SortOrder:   o.SortOrder,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.CreatedAt,
	}
}
