package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a front-desk account. Only used to open a session.
type Staff struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(name string, email Email, passwordHash string, role Role, now time.Time) *Staff {
	return &Staff{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructStaff(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Staff {
	return &Staff{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Staff) ID() uuid.UUID         { return s.id }
func (s *Staff) Name() string          { return s.name }
func (s *Staff) Email() Email          { return s.email }
func (s *Staff) PasswordHash() string  { return s.passwordHash }
func (s *Staff) Role() Role            { return s.role }
func (s *Staff) LastLogin() *time.Time { return s.lastLogin }
func (s *Staff) IsActive() bool        { return s.isActive }
func (s *Staff) CreatedAt() time.Time  { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time  { return s.updatedAt }
