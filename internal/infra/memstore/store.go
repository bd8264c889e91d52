// Package memstore keeps every record in process memory. Transactions work on
// a private copy of the maps that replaces the shared state on commit, so a
// failed transaction leaves nothing behind.
package memstore

import (
	"context"
	"sync"
	"sync/atomic"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/extra"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/domain/settings"
	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in a read-only transaction")

type state struct {
	bookings   map[string]*booking.Booking
	rooms      map[string]*room.Room
	extras     map[string]*extra.Extra
	items      map[string]*minibar.Item
	shortfalls map[uuid.UUID]minibar.Shortfall
	settings   *settings.Settings
	staff      map[uuid.UUID]*staff.Staff
}

func newState() *state {
	return &state{
		bookings:   map[string]*booking.Booking{},
		rooms:      map[string]*room.Room{},
		extras:     map[string]*extra.Extra{},
		items:      map[string]*minibar.Item{},
		shortfalls: map[uuid.UUID]minibar.Shortfall{},
		staff:      map[uuid.UUID]*staff.Staff{},
	}
}

// clone copies the maps. Stored entities are never mutated in place, so the
// values can be shared between versions.
func (s *state) clone() *state {
	c := &state{
		bookings:   make(map[string]*booking.Booking, len(s.bookings)),
		rooms:      make(map[string]*room.Room, len(s.rooms)),
		extras:     make(map[string]*extra.Extra, len(s.extras)),
		items:      make(map[string]*minibar.Item, len(s.items)),
		shortfalls: make(map[uuid.UUID]minibar.Shortfall, len(s.shortfalls)),
		settings:   s.settings,
		staff:      make(map[uuid.UUID]*staff.Staff, len(s.staff)),
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.extras {
		c.extras[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.shortfalls {
		c.shortfalls[k] = v
	}
	for k, v := range s.staff {
		c.staff[k] = v
	}
	return c
}

type Store struct {
	writeMu sync.Mutex
	current atomic.Pointer[state]
	pub     shared.ChangePublisher
	clock   clock.Clock
}

// New returns an empty store. Committed changes go to pub when it is not nil.
func New(pub shared.ChangePublisher, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	s := &Store{pub: pub, clock: clk}
	s.current.Store(newState())
	return s
}

// Within runs fn against a private copy. Writers are serialized; readers keep
// seeing the last committed state until fn returns nil.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t := &tx{st: s.current.Load().clone(), clock: s.clock}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.current.Store(t.st)

	if s.pub != nil {
		for _, ev := range t.events {
			s.pub.Publish(ev)
		}
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &tx{st: s.current.Load(), readOnly: true, clock: s.clock})
}

type tx struct {
	st       *state
	readOnly bool
	clock    clock.Clock
	events   []shared.ChangeEvent
}

func (t *tx) record(table string, op shared.ChangeOp, id string) {
	ev := shared.ChangeEvent{
		ID:       uuid.New(),
		Op:       op,
		Table:    table,
		RecordID: id,
		At:       t.clock.Now(),
	}
	if table == shared.TableBookings {
		ev.ReservationID = id
	}
	t.events = append(t.events, ev)
}

func (t *tx) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}

func (t *tx) Bookings() shared.BookingRepository     { return bookingRepo{t} }
func (t *tx) Rooms() shared.RoomRepository           { return roomRepo{t} }
func (t *tx) Extras() shared.ExtraRepository         { return extraRepo{t} }
func (t *tx) Minibar() shared.MinibarRepository      { return minibarRepo{t} }
func (t *tx) Shortfalls() shared.ShortfallRepository { return shortfallRepo{t} }
func (t *tx) Settings() shared.SettingsRepository    { return settingsRepo{t} }
func (t *tx) Staff() shared.StaffRepository          { return staffRepo{t} }
