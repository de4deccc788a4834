package uow

import (
	"context"
	"log/slog"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/readstore"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/repository"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// Within runs fn once in a read-committed transaction, so the booking row and
// its option rows commit together or not at all. Failures are returned as is.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err = fn(ctx, newPgTx(u.q, pgxTx)); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// pgTx hands out repositories bound to one transaction.
type pgTx struct {
	dbtx query.DBTX
	q    *query.Queries

	bookings shared.BookingRepository
	options  shared.OptionResolver
}

func newPgTx(q *query.Queries, dbtx query.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Options() shared.OptionResolver {
	if t.options == nil {
		t.options = readstore.NewOptionReadStore(t.q, t.dbtx)
	}
	return t.options
}
