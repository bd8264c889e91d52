package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const shortfallColumns = `id, reservation_id, item_id, quantity, status, attempts, last_error, created_at, resolved_at`

type ShortfallRepository struct {
	db DBTX
}

func NewShortfallRepository(db DBTX) *ShortfallRepository {
	return &ShortfallRepository{db: db}
}

func (r *ShortfallRepository) Insert(ctx context.Context, s minibar.Shortfall) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_shortfalls (`+shortfallColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pgconv.UUIDToPgtype(s.ID),
		s.ReservationID,
		s.ItemID,
		s.Quantity,
		string(s.Status),
		s.Attempts,
		s.LastError,
		pgconv.TimeToPgtype(s.CreatedAt),
		timePtrToPgtype(s.ResolvedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert stock shortfall", err)
	}
	return nil
}

// List returns shortfalls oldest first. An empty status lists everything.
func (r *ShortfallRepository) List(ctx context.Context, status minibar.ShortfallStatus) ([]minibar.Shortfall, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+shortfallColumns+` FROM stock_shortfalls WHERE ($1 = '' OR status = $1) ORDER BY created_at, id`,
		string(status),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock shortfalls", err)
	}
	defer rows.Close()

	var out []minibar.Shortfall
	for rows.Next() {
		var (
			s          minibar.Shortfall
			id         pgtype.UUID
			st         string
			createdAt  pgtype.Timestamptz
			resolvedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &s.ReservationID, &s.ItemID, &s.Quantity, &st, &s.Attempts, &s.LastError, &createdAt, &resolvedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock shortfall", err)
		}
		s.ID = uuid.UUID(id.Bytes)
		s.Status = minibar.ShortfallStatus(st)
		s.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		s.ResolvedAt = pgconv.TimePtrFromPgtype(resolvedAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stock shortfalls", err)
	}
	return out, nil
}

func (r *ShortfallRepository) MarkResolved(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE stock_shortfalls SET status = 'resolved', resolved_at = $2, attempts = attempts + 1, last_error = '' WHERE id = $1 AND status = 'pending'`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve stock shortfall", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock shortfall not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ShortfallRepository) RecordAttempt(ctx context.Context, id uuid.UUID, lastErr string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE stock_shortfalls SET attempts = attempts + 1, last_error = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), lastErr,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record shortfall attempt", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock shortfall not found", nil, infra.KindNotFound)
	}
	return nil
}

func timePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgconv.TimeToPgtype(*t)
}
