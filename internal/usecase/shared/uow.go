package shared

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/domain/staff"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction. Nothing is visible to
// other transactions until fn returns nil.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Extras() ExtraRepository
	Minibar() MinibarRepository
	Shortfalls() ShortfallRepository
	Settings() SettingsRepository
	Staff() StaffRepository
}

// BookingRepository is the booking record store. FindByID reports a missing
// id as an infra NOT_FOUND error; a write that would overlap another active
// stay of the same room fails with an infra CONFLICT error.
type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) (string, error)
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	// FindByIDForUpdate also keeps other writers off the record until the
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*booking.Booking, error)
	// FindByFilter orders newest first and applies Search, Limit and Offset.
	FindByFilter(ctx context.Context, f booking.Filter) ([]*booking.Booking, error)
	// Count ignores Limit and Offset.
	Count(ctx context.Context, f booking.Filter) (int, error)
	UpdateFields(ctx context.Context, id string, p booking.Patch) error
	// FindOccupancies lists stays of active bookings overlapping [from, to).
	// A zero bound is open.
	FindOccupancies(ctx context.Context, from, to time.Time) ([]room.Occupancy, error)
}

type RoomRepository interface {
	Insert(ctx context.Context, r *room.Room) error
	FindByID(ctx context.Context, id string) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id string) error
}

type ExtraRepository interface {
	Insert(ctx context.Context, e *extra.Extra) error
	FindByID(ctx context.Context, id string) (*extra.Extra, error)
	// List filters by kind when kind is non-empty.
	List(ctx context.Context, kind extra.Kind) ([]*extra.Extra, error)
	Update(ctx context.Context, e *extra.Extra) error
	Delete(ctx context.Context, id string) error
}

type MinibarRepository interface {
	Insert(ctx context.Context, it *minibar.Item) error
	FindByID(ctx context.Context, id string) (*minibar.Item, error)
	List(ctx context.Context) ([]*minibar.Item, error)
	Update(ctx context.Context, it *minibar.Item) error
	Delete(ctx context.Context, id string) error
	// AdjustStock adds delta to the stock in one conditional step and returns
	// the new level. A result below zero leaves the row untouched and fails
	// with *minibar.NegativeStockError.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}

type ShortfallRepository interface {
	Insert(ctx context.Context, s minibar.Shortfall) error
	List(ctx context.Context, status minibar.ShortfallStatus) ([]minibar.Shortfall, error)
	// MarkResolved only touches a pending shortfall; anything else is NOT_FOUND.
	MarkResolved(ctx context.Context, id uuid.UUID, at time.Time) error
	RecordAttempt(ctx context.Context, id uuid.UUID, lastErr string) error
}

type SettingsRepository interface {
	// Get returns settings.Default() when nothing was saved yet.
	Get(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}

type StaffRepository interface {
	Insert(ctx context.Context, s *staff.Staff) error
	FindByEmail(ctx context.Context, email staff.Email) (*staff.Staff, error)
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
	Count(ctx context.Context) (int, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
