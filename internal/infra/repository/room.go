package repository

import (
	"context"

	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, name, room_type, created_at, updated_at`

type RoomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Insert(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO rooms (id, name, room_type) VALUES ($1, $2, $3)`,
		rm.ID(), rm.Name(), rm.Type(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*room.Room, error) {
	rm, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET name = $2, room_type = $3, updated_at = NOW() WHERE id = $1`,
		rm.ID(), rm.Name(), rm.Type(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, name, roomType   string
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &roomType, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return room.ReconstructRoom(id, name, roomType, createdAt.Time, updatedAt.Time), nil
}
