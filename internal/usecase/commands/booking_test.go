//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/clock"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/commands"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/shared"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/builder"
	queriesmock "github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/mock/queries"
	sharedmock "github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	uc       commands.BookingCommands
	uow      *sharedmock.MockUnitOfWork
	bookings *sharedmock.MockBookingRepository
	options  *sharedmock.MockOptionResolver
	queries  *queriesmock.MockBookingQueries
}

// newFixture wires a unit of work whose Within runs fn once against the mocked repositories.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		options:  sharedmock.NewMockOptionResolver(ctrl),
		queries:  queriesmock.NewMockBookingQueries(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	tx.EXPECT().Options().Return(f.options).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		},
	).AnyTimes()

	clk := clock.NewFixedClock(fixedNow)
	factory := booking.NewFactory(clk, booking.NewSumPriceCalculator())
	f.uc = commands.NewBookingUseCase(f.uow, factory, f.queries, clk)
	return f
}

func notFoundRepoErr() error {
	return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	pool := builder.NewOptionBuilder().BuildPrice()
	bbq := builder.NewOptionBuilder().With(func(o *builder.OptionBuilder) { o.PriceCents = 2500 }).BuildPrice()
	unknown := uuid.New()

	request := func() commands.CreateBookingRequest {
		return commands.CreateBookingRequest{
			Name:      "Jan",
			Email:     "jan@example.com",
			Phone:     "0470123456",
			Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
			OptionIDs: []uuid.UUID{pool.ID, bbq.ID, unknown},
		}
	}

	t.Run("stores booking priced from resolved options", func(t *testing.T) {
		f := newFixture(t)
		createdID := uuid.New()
		view := builder.NewBookingBuilder().WithID(createdID).BuildViewQuery()

		f.options.EXPECT().ResolveActive(gomock.Any(), []uuid.UUID{pool.ID, bbq.ID, unknown}).
			Return([]booking.OptionPrice{pool, bbq}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, int64(7500), b.TotalPrice().Cents())
				assert.Equal(t, fixedNow, b.CreatedAt())
				return createdID, nil
			})
		f.bookings.EXPECT().AddOptions(gomock.Any(), createdID, []uuid.UUID{pool.ID, bbq.ID}).Return(nil)
		f.queries.EXPECT().GetByID(gomock.Any(), createdID).Return(view, nil)

		got, err := f.uc.CreateBooking(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("no resolvable option", func(t *testing.T) {
		f := newFixture(t)
		f.options.EXPECT().ResolveActive(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.uc.CreateBooking(ctx, request())
		assert.ErrorIs(t, err, errs.ErrNoValidOptions)
	})

	t.Run("association failure aborts the transaction", func(t *testing.T) {
		f := newFixture(t)
		createdID := uuid.New()
		dbErr := infra.WrapRepoErr("failed to add booking options", errors.New("connection reset"))

		f.options.EXPECT().ResolveActive(gomock.Any(), gomock.Any()).Return([]booking.OptionPrice{pool}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(createdID, nil)
		f.bookings.EXPECT().AddOptions(gomock.Any(), createdID, gomock.Any()).Return(dbErr)

		_, err := f.uc.CreateBooking(ctx, request())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("resolver failure is returned", func(t *testing.T) {
		f := newFixture(t)
		f.options.EXPECT().ResolveActive(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to resolve options", errors.New("timeout")))

		_, err := f.uc.CreateBooking(ctx, request())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("patches fields and keeps options", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()
		name := "Piet"

		f.bookings.EXPECT().FindByID(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.bookings.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				assert.Equal(t, "Piet", b.Name())
				assert.Equal(t, bb.OptionIDs(), b.OptionIDs())
				assert.Equal(t, bb.Total(), b.TotalPrice())
				assert.Equal(t, fixedNow, b.UpdatedAt())
				return nil
			})
		f.queries.EXPECT().GetByID(gomock.Any(), bb.ID).Return(bb.BuildViewQuery(), nil)

		_, err := f.uc.UpdateBooking(ctx, bb.ID, commands.UpdateBookingRequest{Name: &name})
		require.NoError(t, err)
	})

	t.Run("replaces options and recomputes total", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()
		a := builder.NewOptionBuilder().BuildPrice()
		b := builder.NewOptionBuilder().BuildPrice()
		ids := []uuid.UUID{a.ID, b.ID}

		gomock.InOrder(
			f.bookings.EXPECT().FindByID(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil),
			f.options.EXPECT().ResolveActive(gomock.Any(), ids).Return([]booking.OptionPrice{a, b}, nil),
			f.bookings.EXPECT().RemoveOptions(gomock.Any(), bb.ID).Return(nil),
			f.bookings.EXPECT().AddOptions(gomock.Any(), bb.ID, ids).Return(nil),
			f.bookings.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated *booking.Booking) error {
					assert.Equal(t, int64(10000), updated.TotalPrice().Cents())
					return nil
				}),
			f.queries.EXPECT().GetByID(gomock.Any(), bb.ID).Return(bb.BuildViewQuery(), nil),
		)

		_, err := f.uc.UpdateBooking(ctx, bb.ID, commands.UpdateBookingRequest{OptionIDs: ids})
		require.NoError(t, err)
	})

	t.Run("nothing to change skips the write", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.bookings.EXPECT().FindByID(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.queries.EXPECT().GetByID(gomock.Any(), bb.ID).Return(bb.BuildViewQuery(), nil)

		_, err := f.uc.UpdateBooking(ctx, bb.ID, commands.UpdateBookingRequest{})
		require.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundRepoErr())

		_, err := f.uc.UpdateBooking(ctx, id, commands.UpdateBookingRequest{})
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("replacement without resolvable options", func(t *testing.T) {
		f := newFixture(t)
		bb := builder.NewBookingBuilder()

		f.bookings.EXPECT().FindByID(gomock.Any(), bb.ID).Return(bb.BuildDomain(), nil)
		f.options.EXPECT().ResolveActive(gomock.Any(), gomock.Any()).Return([]booking.OptionPrice{}, nil)

		_, err := f.uc.UpdateBooking(ctx, bb.ID, commands.UpdateBookingRequest{OptionIDs: []uuid.UUID{uuid.New()}})
		assert.ErrorIs(t, err, errs.ErrNoValidOptions)
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.bookings.EXPECT().Delete(gomock.Any(), id).Return(nil)

		assert.NoError(t, f.uc.DeleteBooking(ctx, id))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.bookings.EXPECT().Delete(gomock.Any(), id).Return(notFoundRepoErr())

		err := f.uc.DeleteBooking(ctx, id)
		assert.True(t, errs.IsNotFound(err))
	})
}
