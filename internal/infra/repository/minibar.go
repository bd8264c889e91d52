package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const minibarColumns = `id, name, category, stock, price`

// Conditional decrement. No row comes back when the item is missing or the
// stock cannot cover the change.
const adjustStockSQL = `UPDATE minibar_items
	SET stock = stock + $2, updated_at = NOW()
	WHERE id = $1 AND stock + $2 >= 0
	RETURNING stock`

type MinibarRepository struct {
	db DBTX
}

func NewMinibarRepository(db DBTX) *MinibarRepository {
	return &MinibarRepository{db: db}
}

func (r *MinibarRepository) Insert(ctx context.Context, it *minibar.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO minibar_items (id, name, category, stock, price) VALUES ($1, $2, $3, $4, $5)`,
		it.ID(), it.Name(), string(it.Category()), it.Stock(), pgconv.DecimalToNumeric(it.Price()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert minibar item", err)
	}
	return nil
}

func (r *MinibarRepository) FindByID(ctx context.Context, id string) (*minibar.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+minibarColumns+` FROM minibar_items WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("minibar item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find minibar item", err)
	}
	return it, nil
}

func (r *MinibarRepository) List(ctx context.Context) ([]*minibar.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT `+minibarColumns+` FROM minibar_items ORDER BY category, name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list minibar items", err)
	}
	defer rows.Close()

	var out []*minibar.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan minibar item", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate minibar items", err)
	}
	return out, nil
}

func (r *MinibarRepository) Update(ctx context.Context, it *minibar.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE minibar_items SET name = $2, category = $3, stock = $4, price = $5, updated_at = NOW() WHERE id = $1`,
		it.ID(), it.Name(), string(it.Category()), it.Stock(), pgconv.DecimalToNumeric(it.Price()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update minibar item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("minibar item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MinibarRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM minibar_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete minibar item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("minibar item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MinibarRepository) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, adjustStockSQL, id, delta).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to adjust stock", err)
	}

	// Tell a missing item apart from one that cannot cover the change.
	var current int
	err = r.db.QueryRow(ctx, `SELECT stock FROM minibar_items WHERE id = $1`, id).Scan(&current)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("minibar item not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read stock", err)
	}
	return current, &minibar.NegativeStockError{ItemID: id, Stock: current, Requested: -delta}
}

func scanItem(row pgx.Row) (*minibar.Item, error) {
	var (
		id, name, category string
		stock              int
		price              pgtype.Numeric
	)
	if err := row.Scan(&id, &name, &category, &stock, &price); err != nil {
		return nil, err
	}
	return minibar.NewItem(id, name, minibar.Category(category), stock, pgconv.DecimalFromNumeric(price))
}
