package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getActiveOptionPricesByIDs = `
SELECT id, price
FROM options
WHERE id = ANY($1::uuid[])
  AND active = true
ORDER BY sort_order, id
`

func (q *Queries) GetActiveOptionPricesByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) ([]OptionPrice, error) {
	rows, err := db.Query(ctx, getActiveOptionPricesByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OptionPrice{}
	for rows.Next() {
		var i OptionPrice
		if err := rows.Scan(&i.ID, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listActiveOptions = `
SELECT id, name, description, price, active, sort_order, created_at, updated_at
FROM options
WHERE active = true
ORDER BY sort_order ASC, name ASC
`

func (q *Queries) ListActiveOptions(ctx context.Context, db DBTX) ([]Option, error) {
	rows, err := db.Query(ctx, listActiveOptions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Option{}
	for rows.Next() {
		var i Option
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.Active,
			&i.SortOrder,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
