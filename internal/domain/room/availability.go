package room

import "time"

// Occupancy is one room stay held by a booking.
type Occupancy struct {
	ReservationID string
	RoomID        string
	CheckIn       time.Time
	CheckOut      time.Time
}

// Overlaps reports whether [a1,a2) and [b1,b2) intersect.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && b1.Before(a2)
}

// FindAvailableRooms keeps the rooms no other booking holds for
// [checkIn, checkOut). Stays belonging to excludeReservationID are ignored so
// a booking being edited does not block itself. When either date is missing
// every room is returned. Input order is preserved.
//
// The result is advisory. Nothing is locked, so two callers can both see the
// same room as free; the store rejects the second conflicting write.
func FindAvailableRooms(all []*Room, occupied []Occupancy, checkIn, checkOut time.Time, excludeReservationID string) []*Room {
	if checkIn.IsZero() || checkOut.IsZero() {
		return all
	}

	taken := make(map[string]struct{})
	for _, o := range occupied {
		if excludeReservationID != "" && o.ReservationID == excludeReservationID {
			continue
		}
		if Overlaps(o.CheckIn, o.CheckOut, checkIn, checkOut) {
			taken[o.RoomID] = struct{}{}
		}
	}

	free := make([]*Room, 0, len(all))
	for _, r := range all {
		if _, ok := taken[r.id]; !ok {
			free = append(free, r)
		}
	}
	return free
}
