package changefeed

import (
	"log/slog"
	"sync"

	"hotel-frontdesk/internal/usecase/shared"
)

// Hub fans committed changes out to in-process subscribers. Subscribers run
// on the publisher's goroutine and must not block.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint64]func(shared.ChangeEvent)
	next uint64
}

func NewHub() *Hub {
	return &Hub{subs: map[uint64]func(shared.ChangeEvent){}}
}

func (h *Hub) Subscribe(fn func(shared.ChangeEvent)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

func (h *Hub) Publish(ev shared.ChangeEvent) {
	h.mu.RLock()
	fns := make([]func(shared.ChangeEvent), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	for _, fn := range fns {
		deliver(fn, ev)
	}
}

func deliver(fn func(shared.ChangeEvent), ev shared.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("change subscriber panicked", "table", ev.Table, "record_id", ev.RecordID, "panic", r)
		}
	}()
	fn(ev)
}
