//go:build unit

package changefeed_test

import (
	"sync/atomic"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra/changefeed"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	hub := changefeed.NewHub()
	var a, b atomic.Int32

	unsubA := hub.Subscribe(func(shared.ChangeEvent) { a.Add(1) })
	hub.Subscribe(func(shared.ChangeEvent) { b.Add(1) })
	hub.Subscribe(func(shared.ChangeEvent) { panic("bad subscriber") })

	hub.Publish(shared.ChangeEvent{Table: shared.TableBookings})
	unsubA()
	unsubA()
	hub.Publish(shared.ChangeEvent{Table: shared.TableBookings})

	assert.Equal(t, int32(1), a.Load())
	assert.Equal(t, int32(2), b.Load())
}

func TestDecode(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("trigger payload", func(t *testing.T) {
		payload := `{"op":"UPDATE","table":"bookings","reservation_id":"T-12345678","record_id":"T-12345678","at":"2024-07-01T10:00:00+06:00"}`
		ev, err := changefeed.Decode(payload, now)
		require.NoError(t, err)
		assert.Equal(t, shared.OpUpdate, ev.Op)
		assert.Equal(t, shared.TableBookings, ev.Table)
		assert.Equal(t, "T-12345678", ev.ReservationID)
		assert.Equal(t, time.Date(2024, 7, 1, 4, 0, 0, 0, time.UTC), ev.At)
		assert.JSONEq(t, payload, string(ev.Payload))
	})

	t.Run("missing time falls back to now", func(t *testing.T) {
		ev, err := changefeed.Decode(`{"op":"DELETE","table":"rooms","record_id":"AB12"}`, now)
		require.NoError(t, err)
		assert.Equal(t, now, ev.At)
		assert.Empty(t, ev.ReservationID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := changefeed.Decode(`not json`, now)
		assert.Error(t, err)
		_, err = changefeed.Decode(`{}`, now)
		assert.Error(t, err)
	})
}

func TestResyncEvent(t *testing.T) {
	now := time.Date(2024, 7, 1, 15, 0, 0, 0, time.FixedZone("BST", 6*3600))
	ev := changefeed.ResyncEvent(now)
	assert.Equal(t, shared.OpResync, ev.Op)
	assert.Equal(t, now.UTC(), ev.At)
	assert.Empty(t, ev.ReservationID)
	assert.NotEqual(t, changefeed.ResyncEvent(now).ID, ev.ID)
}
