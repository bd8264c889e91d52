package repository

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const staffColumns = `id, name, email, password_hash, role, last_login_at, is_active, created_at, updated_at`

type StaffRepository struct {
	db DBTX
}

func NewStaffRepository(db DBTX) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Insert(ctx context.Context, s *staff.Staff) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO staff (`+staffColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		pgconv.UUIDToPgtype(s.ID()),
		s.Name(),
		s.Email().Value(),
		s.PasswordHash(),
		s.Role().String(),
		timePtrToPgtype(s.LastLogin()),
		s.IsActive(),
		pgconv.TimeToPgtype(s.CreatedAt()),
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert staff", err)
	}
	return nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email staff.Email) (*staff.Staff, error) {
	s, err := scanStaff(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE email = $1`, email.Value()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by email", err)
	}
	return s, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error) {
	s, err := scanStaff(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}
	return s, nil
}

func (r *StaffRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count staff", err)
	}
	return n, nil
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE staff SET last_login_at = $2, updated_at = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update staff last login", err)
	}
	return nil
}

func (r *StaffRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE staff SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		pgconv.UUIDToPgtype(id), hash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update staff password", err)
	}
	return nil
}

func scanStaff(row pgx.Row) (*staff.Staff, error) {
	var (
		id                   pgtype.UUID
		name, email, hash, rl string
		lastLogin            pgtype.Timestamptz
		isActive             bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &email, &hash, &rl, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := staff.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return staff.ReconstructStaff(
		uuid.UUID(id.Bytes),
		name,
		e,
		hash,
		staff.Role(rl),
		pgconv.TimePtrFromPgtype(lastLogin),
		isActive,
		createdAt.Time,
		updatedAt.Time,
	), nil
}
