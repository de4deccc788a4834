//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/repository"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/pgconv"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/builder"
	repositorymock "github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create / Update Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder().WithNotes("Met taart")

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: maps every column",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.InsertBookingParams) (uuid.UUID, error) {
						assert.Equal(t, bb.ID, arg.ID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, "Met taart", arg.Notes.String)
						cents, err := pgconv.CentsFromNumeric(arg.TotalPrice)
						assert.NoError(t, err)
						assert.Equal(t, int64(5000), cents)
						assert.Equal(t, bb.Date, arg.ReservationDate.Time)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: duplicate key",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database failure",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().InsertBooking(ctx, db, gomock.Any()).Return(uuid.Nil, errConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			id, err := repo.Create(ctx, bb.BuildDomain())

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, id)
		})
	}
}

func TestBookingRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().BuildDomain()

	testCases := []struct {
		name       string
		run        func(*repository.BookingRepository) error
		setupMock  func(*repositorymock.MockBookingWriteQueries, *mockDBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "update success",
			run:  func(r *repository.BookingRepository) error { return r.Update(ctx, b) },
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().UpdateBooking(ctx, db, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "update of missing row",
			run:  func(r *repository.BookingRepository) error { return r.Update(ctx, b) },
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().UpdateBooking(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "delete success",
			run:  func(r *repository.BookingRepository) error { return r.Delete(ctx, b.ID()) },
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().DeleteBooking(ctx, db, b.ID()).Return(int64(1), nil)
			},
		},
		{
			name: "delete of missing row",
			run:  func(r *repository.BookingRepository) error { return r.Delete(ctx, b.ID()) },
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().DeleteBooking(ctx, db, b.ID()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "delete failure",
			run:  func(r *repository.BookingRepository) error { return r.Delete(ctx, b.ID()) },
			setupMock: func(m *repositorymock.MockBookingWriteQueries, db *mockDBTX) {
				m.EXPECT().DeleteBooking(ctx, db, b.ID()).Return(int64(0), errConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB)

			err := tc.run(repository.NewBookingRepository(mockQueries, mockDB))

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

// =============================================================================
// Option Association Tests
// =============================================================================

func TestBookingRepository_Options(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("add converts ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		mockQueries.EXPECT().InsertBookingOptions(ctx, mockDB, bookingID, pgconv.UUIDsToPgtype(ids)).Return(nil)

		repo := repository.NewBookingRepository(mockQueries, mockDB)
		assert.NoError(t, repo.AddOptions(ctx, bookingID, ids))
	})

	t.Run("add with no ids is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)

		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})
		assert.NoError(t, repo.AddOptions(ctx, bookingID, nil))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertBookingOptions(ctx, mockDB, bookingID, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		repo := repository.NewBookingRepository(mockQueries, mockDB)
		err := repo.AddOptions(ctx, bookingID, []uuid.UUID{uuid.New()})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
		assert.Equal(t, "23503", infra.ErrorCode(err))
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().DeleteBookingOptions(ctx, mockDB, bookingID).Return(errConnectionLost)

		repo := repository.NewBookingRepository(mockQueries, mockDB)
		assert.True(t, infra.IsKind(repo.RemoveOptions(ctx, bookingID), infra.KindDBFailure))
	})
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("reconstructs the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		bb := builder.NewBookingBuilder().AsConfirmed().WithOptions(
			booking.OptionPrice{ID: uuid.New(), Price: booking.NewMoney(5000)},
			booking.OptionPrice{ID: uuid.New(), Price: booking.NewMoney(1999)},
		)
		gomock.InOrder(
			mockQueries.EXPECT().LockBooking(ctx, mockDB, bb.ID).Return(nil),
			mockQueries.EXPECT().GetBookingByID(ctx, mockDB, bb.ID).Return(bb.BuildInfra(), nil),
		)

		got, err := repository.NewBookingRepository(mockQueries, mockDB).FindByID(ctx, bb.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status())
		assert.Equal(t, int64(6999), got.TotalPrice().Cents())
		assert.Equal(t, bb.OptionIDs(), got.OptionIDs())
		assert.Equal(t, bb.Date, got.Date())
	})

	t.Run("no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		id := uuid.New()
		mockQueries.EXPECT().LockBooking(ctx, mockDB, id).Return(pgx.ErrNoRows)

		_, err := repository.NewBookingRepository(mockQueries, mockDB).FindByID(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("lock failure is not read past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		id := uuid.New()
		mockQueries.EXPECT().LockBooking(ctx, mockDB, id).Return(&pgconn.PgError{Code: "55P03"})

		_, err := repository.NewBookingRepository(mockQueries, mockDB).FindByID(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.Equal(t, "55P03", infra.ErrorCode(err))
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX satisfies query.DBTX; the query mock never touches it.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
