package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChangeOp string

const (
	OpInsert ChangeOp = "INSERT"
	OpUpdate ChangeOp = "UPDATE"
	OpDelete ChangeOp = "DELETE"
	// OpResync means changes may have been missed; subscribers drop
	// whatever they derived from earlier events.
	OpResync ChangeOp = "RESYNC"
)

// ChangeEvent describes one committed row change. Payload carries the row as
// the store saw it and may be empty for deletes.
type ChangeEvent struct {
	ID            uuid.UUID       `json:"id"`
	Op            ChangeOp        `json:"op"`
	Table         string          `json:"table"`
	ReservationID string          `json:"reservation_id,omitempty"`
	RecordID      string          `json:"record_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	At            time.Time       `json:"at"`
}

// ChangeFeed delivers committed changes to subscribers. Delivery is best
// effort and in commit order per publisher.
type ChangeFeed interface {
	Subscribe(fn func(ChangeEvent)) (unsubscribe func())
}

// ChangePublisher is the write side of the feed, used by stores that do not
// get notifications from the database.
type ChangePublisher interface {
	Publish(ev ChangeEvent)
}

const (
	TableBookings     = "bookings"
	TableRooms        = "rooms"
	TableExtras       = "extras"
	TableMinibarItems = "minibar_items"
	TableSettings     = "settings"
)
