package readstore

import (
	"context"

	domain "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/pgconv"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OptionViewQueries interface {
	ListActiveOptions(ctx context.Context, db query.DBTX) ([]query.Option, error)
	GetActiveOptionPricesByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) ([]query.OptionPrice, error)
}

type OptionReadStore struct {
	queries OptionViewQueries
	db      query.DBTX
}

func NewOptionReadStore(queries OptionViewQueries, db query.DBTX) *OptionReadStore {
	return &OptionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OptionReadStore) ListActive(ctx context.Context) ([]*queries.OptionView, error) {
	rows, err := r.queries.ListActiveOptions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active options", err)
	}

	result := make([]*queries.OptionView, len(rows))
	for i, row := range rows {
		price, err := pgconv.CentsFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid option price", err)
		}
		result[i] = &queries.OptionView{
			ID:          row.ID,
			Name:        row.Name,
			Description: pgconv.StringPtrFromPgtype(row.Description),
			PriceCents:  price,
			Active:      row.Active,
			SortOrder:   row.SortOrder,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// ResolveActive returns the active options among ids. Unknown and inactive ids are dropped.
func (r *OptionReadStore) ResolveActive(ctx context.Context, ids []uuid.UUID) ([]domain.OptionPrice, error) {
	if len(ids) == 0 {
		return []domain.OptionPrice{}, nil
	}

	rows, err := r.queries.GetActiveOptionPricesByIDs(ctx, r.db, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve options", err)
	}

	result := make([]domain.OptionPrice, len(rows))
	for i, row := range rows {
		cents, err := pgconv.CentsFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid option price", err)
		}
		result[i] = domain.OptionPrice{ID: row.ID, Price: domain.NewMoney(cents)}
	}
	return result, nil
}
