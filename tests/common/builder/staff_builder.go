//go:build unit || e2e

package builder

import (
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:           uuid.MustParse("7b0c7a52-4f0e-4b7e-9a55-0c5b7f3f1a01"),
		Name:         "Front Desk",
		Email:        "desk@example.com",
		PasswordHash: "hashed_password",
		Role:         "manager",
		IsActive:     true,
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildDomain() (*staff.Staff, error) {
	email, err := staff.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return staff.ReconstructStaff(s.ID, s.Name, email, s.PasswordHash, role, nil, s.IsActive, now, now), nil
}

func (s *StaffBuilder) BuildView() *queries.StaffView {
	return &queries.StaffView{
		ID:       s.ID,
		Name:     s.Name,
		Email:    s.Email,
		Role:     s.Role,
		IsActive: s.IsActive,
	}
}

// Fluent builder methods
func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) WithPasswordHash(hash string) *StaffBuilder {
	s.PasswordHash = hash
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
