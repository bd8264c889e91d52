package memstore

import (
	"context"
	"sort"
	"time"

	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/domain/staff"

	"github.com/google/uuid"
)

type shortfallRepo struct{ t *tx }

func (r shortfallRepo) Insert(_ context.Context, s minibar.Shortfall) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	if _, ok := r.t.st.shortfalls[s.ID]; ok {
		return duplicate("stock shortfall already exists")
	}
	r.t.st.shortfalls[s.ID] = s
	return nil
}

func (r shortfallRepo) List(_ context.Context, status minibar.ShortfallStatus) ([]minibar.Shortfall, error) {
	var out []minibar.Shortfall
	for _, s := range r.t.st.shortfalls {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r shortfallRepo) MarkResolved(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	s, ok := r.t.st.shortfalls[id]
	if !ok || !s.IsPending() {
		return notFound("pending stock shortfall not found")
	}
	s.Status = minibar.ShortfallResolved
	s.Attempts++
	s.LastError = ""
	s.ResolvedAt = &at
	r.t.st.shortfalls[id] = s
	return nil
}

func (r shortfallRepo) RecordAttempt(_ context.Context, id uuid.UUID, lastErr string) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	s, ok := r.t.st.shortfalls[id]
	if !ok {
		return notFound("stock shortfall not found")
	}
	s.Attempts++
	s.LastError = lastErr
	r.t.st.shortfalls[id] = s
	return nil
}

type settingsRepo struct{ t *tx }

func (r settingsRepo) Get(_ context.Context) (settings.Settings, error) {
	if r.t.st.settings == nil {
		return settings.Default(), nil
	}
	return *r.t.st.settings, nil
}

func (r settingsRepo) Save(_ context.Context, s settings.Settings) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	r.t.st.settings = &s
	return nil
}

type staffRepo struct{ t *tx }

func copyStaff(s *staff.Staff) *staff.Staff {
	return staff.ReconstructStaff(s.ID(), s.Name(), s.Email(), s.PasswordHash(), s.Role(),
		s.LastLogin(), s.IsActive(), s.CreatedAt(), s.UpdatedAt())
}

func (r staffRepo) Insert(_ context.Context, s *staff.Staff) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	for _, existing := range r.t.st.staff {
		if existing.Email() == s.Email() {
			return duplicate("staff email already exists")
		}
	}
	r.t.st.staff[s.ID()] = copyStaff(s)
	return nil
}

func (r staffRepo) FindByEmail(_ context.Context, email staff.Email) (*staff.Staff, error) {
	for _, s := range r.t.st.staff {
		if s.Email() == email {
			return copyStaff(s), nil
		}
	}
	return nil, notFound("staff not found")
}

func (r staffRepo) FindByID(_ context.Context, id uuid.UUID) (*staff.Staff, error) {
	s, ok := r.t.st.staff[id]
	if !ok {
		return nil, notFound("staff not found")
	}
	return copyStaff(s), nil
}

func (r staffRepo) Count(_ context.Context) (int, error) {
	return len(r.t.st.staff), nil
}

func (r staffRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	s, ok := r.t.st.staff[id]
	if !ok {
		return notFound("staff not found")
	}
	r.t.st.staff[id] = staff.ReconstructStaff(s.ID(), s.Name(), s.Email(), s.PasswordHash(), s.Role(),
		&at, s.IsActive(), s.CreatedAt(), at)
	return nil
}

func (r staffRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	s, ok := r.t.st.staff[id]
	if !ok {
		return notFound("staff not found")
	}
	r.t.st.staff[id] = staff.ReconstructStaff(s.ID(), s.Name(), s.Email(), hash, s.Role(),
		s.LastLogin(), s.IsActive(), s.CreatedAt(), r.t.clock.Now())
	return nil
}
