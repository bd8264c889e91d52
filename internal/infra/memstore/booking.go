package memstore

import (
	"context"
	"sort"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/usecase/shared"
)

type bookingRepo struct{ t *tx }

func copyBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(
		b.ReservationID(),
		b.Guest(),
		b.Stays(),
		b.AdvancePayment(),
		b.TotalReceived(),
		b.MinibarConsumption(),
		b.MinibarTotal(),
		b.CheckInStatus(),
		b.Status(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
}

func (r bookingRepo) Insert(_ context.Context, b *booking.Booking) (string, error) {
	if err := r.t.writable(); err != nil {
		return "", err
	}
	id := b.ReservationID()
	if _, ok := r.t.st.bookings[id]; ok {
		return "", duplicate("reservation id already exists")
	}
	stored := copyBooking(b)
	if err := r.checkOverlap(stored); err != nil {
		return "", err
	}
	r.t.st.bookings[id] = stored
	r.t.record(shared.TableBookings, shared.OpInsert, id)
	return id, nil
}

func (r bookingRepo) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := r.t.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return copyBooking(b), nil
}

// FindByIDForUpdate needs no lock: write transactions already run one at a time.
func (r bookingRepo) FindByIDForUpdate(ctx context.Context, id string) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) FindByFilter(_ context.Context, f booking.Filter) ([]*booking.Booking, error) {
	matched := r.match(f)
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		return a.ReservationID() > b.ReservationID()
	})

	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	out := make([]*booking.Booking, 0, len(matched))
	for _, b := range matched {
		out = append(out, copyBooking(b))
	}
	return out, nil
}

func (r bookingRepo) Count(_ context.Context, f booking.Filter) (int, error) {
	return len(r.match(f)), nil
}

func (r bookingRepo) match(f booking.Filter) []*booking.Booking {
	var out []*booking.Booking
	for _, b := range r.t.st.bookings {
		if f.Matches(b) && f.MatchesSearch(b) {
			out = append(out, b)
		}
	}
	return out
}

func (r bookingRepo) UpdateFields(_ context.Context, id string, p booking.Patch) error {
	if err := r.t.writable(); err != nil {
		return err
	}
	cur, ok := r.t.st.bookings[id]
	if !ok {
		return notFound("booking not found")
	}
	if p.IsEmpty() {
		return nil
	}
	next := copyBooking(cur)
	next.Apply(p)
	if err := r.checkOverlap(next); err != nil {
		return err
	}
	r.t.st.bookings[id] = next
	r.t.record(shared.TableBookings, shared.OpUpdate, id)
	return nil
}

func (r bookingRepo) FindOccupancies(_ context.Context, from, to time.Time) ([]room.Occupancy, error) {
	var out []room.Occupancy
	for _, b := range r.t.st.bookings {
		if b.Status() != booking.StatusActive {
			continue
		}
		for _, o := range occupancies(b) {
			if !from.IsZero() && !o.CheckOut.After(from) {
				continue
			}
			if !to.IsZero() && !o.CheckIn.Before(to) {
				continue
			}
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.Before(out[j].CheckIn)
		}
		return out[i].RoomID < out[j].RoomID
	})
	return out, nil
}

// occupancies lists the stays that hold a room: both dates set and at least
// one night, the same rows the database constraint covers.
func occupancies(b *booking.Booking) []room.Occupancy {
	var out []room.Occupancy
	for _, s := range b.Stays() {
		if s.CheckInDate.IsZero() || !s.CheckInDate.Before(s.CheckOutDate) {
			continue
		}
		out = append(out, room.Occupancy{
			ReservationID: b.ReservationID(),
			RoomID:        s.RoomID,
			CheckIn:       s.CheckInDate,
			CheckOut:      s.CheckOutDate,
		})
	}
	return out
}

// checkOverlap rejects an active booking whose stays collide with another
// active stay of the same room, its own stays included.
func (r bookingRepo) checkOverlap(b *booking.Booking) error {
	if b.Status() != booking.StatusActive {
		return nil
	}
	mine := occupancies(b)
	for i, a := range mine {
		for _, c := range mine[i+1:] {
			if a.RoomID == c.RoomID && room.Overlaps(a.CheckIn, a.CheckOut, c.CheckIn, c.CheckOut) {
				return conflict("room " + a.RoomID + " is booked twice for overlapping dates")
			}
		}
	}
	for id, other := range r.t.st.bookings {
		if id == b.ReservationID() || other.Status() != booking.StatusActive {
			continue
		}
		for _, o := range occupancies(other) {
			for _, a := range mine {
				if a.RoomID == o.RoomID && room.Overlaps(a.CheckIn, a.CheckOut, o.CheckIn, o.CheckOut) {
					return conflict("room " + a.RoomID + " already booked by " + id)
				}
			}
		}
	}
	return nil
}
