package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const extraColumns = `id, name, kind, price`

type ExtraRepository struct {
	db DBTX
}

func NewExtraRepository(db DBTX) *ExtraRepository {
	return &ExtraRepository{db: db}
}

func (r *ExtraRepository) Insert(ctx context.Context, e *extra.Extra) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO extras (id, name, kind, price) VALUES ($1, $2, $3, $4)`,
		e.ID(), e.Name(), string(e.Kind()), pgconv.DecimalToNumeric(e.Price()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert extra", err)
	}
	return nil
}

func (r *ExtraRepository) FindByID(ctx context.Context, id string) (*extra.Extra, error) {
	e, err := scanExtra(r.db.QueryRow(ctx, `SELECT `+extraColumns+` FROM extras WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("extra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find extra", err)
	}
	return e, nil
}

func (r *ExtraRepository) List(ctx context.Context, kind extra.Kind) ([]*extra.Extra, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+extraColumns+` FROM extras WHERE ($1 = '' OR kind = $1) ORDER BY name, id`,
		string(kind),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list extras", err)
	}
	defer rows.Close()

	var out []*extra.Extra
	for rows.Next() {
		e, err := scanExtra(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras", err)
	}
	return out, nil
}

func (r *ExtraRepository) Update(ctx context.Context, e *extra.Extra) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE extras SET name = $2, kind = $3, price = $4, updated_at = NOW() WHERE id = $1`,
		e.ID(), e.Name(), string(e.Kind()), pgconv.DecimalToNumeric(e.Price()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update extra", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extra not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ExtraRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM extras WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete extra", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extra not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanExtra(row pgx.Row) (*extra.Extra, error) {
	var (
		id, name, kind string
		price          pgtype.Numeric
	)
	if err := row.Scan(&id, &name, &kind, &price); err != nil {
		return nil, err
	}
	return extra.NewExtra(id, name, extra.Kind(kind), pgconv.DecimalFromNumeric(price))
}
