package minibar

import (
	"time"

	"github.com/google/uuid"
)

type ShortfallStatus string

const (
	ShortfallPending  ShortfallStatus = "pending"
	ShortfallResolved ShortfallStatus = "resolved"
)

// Shortfall is a checkout decrement the stock could not cover. It stays
// pending until a reconcile pass manages to take the units out of stock.
type Shortfall struct {
	ID            uuid.UUID
	ReservationID string
	ItemID        string
	Quantity      int
	Status        ShortfallStatus
	Attempts      int
	LastError     string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

func NewShortfall(reservationID, itemID string, qty int, cause error, now time.Time) Shortfall {
	s := Shortfall{
		ID:            uuid.New(),
		ReservationID: reservationID,
		ItemID:        itemID,
		Quantity:      qty,
		Status:        ShortfallPending,
		Attempts:      1,
		CreatedAt:     now,
	}
	if cause != nil {
		s.LastError = cause.Error()
	}
	return s
}

func (s Shortfall) IsPending() bool {
	return s.Status == ShortfallPending
}
