package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Channel is the NOTIFY channel written by the notify_booking_changes trigger.
const Channel = "booking_changes"

const reconnectDelay = 2 * time.Second

type notification struct {
	Op            string    `json:"op"`
	Table         string    `json:"table"`
	ReservationID string    `json:"reservation_id"`
	RecordID      string    `json:"record_id"`
	At            time.Time `json:"at"`
}

// Decode turns a trigger payload into a ChangeEvent. A missing timestamp
// becomes now.
func Decode(payload string, now time.Time) (shared.ChangeEvent, error) {
	var n notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return shared.ChangeEvent{}, errs.Wrap(err, "decode change notification")
	}
	if n.Table == "" {
		return shared.ChangeEvent{}, errs.New("change notification without table")
	}
	at := n.At
	if at.IsZero() {
		at = now
	}
	return shared.ChangeEvent{
		ID:            uuid.New(),
		Op:            shared.ChangeOp(n.Op),
		Table:         n.Table,
		ReservationID: n.ReservationID,
		RecordID:      n.RecordID,
		Payload:       json.RawMessage(payload),
		At:            at.UTC(),
	}, nil
}

// ResyncEvent tells subscribers that notifications may have been lost while
// no connection was listening.
func ResyncEvent(now time.Time) shared.ChangeEvent {
	return shared.ChangeEvent{ID: uuid.New(), Op: shared.OpResync, At: now.UTC()}
}

// Listener holds one pooled connection on LISTEN and republishes every
// notification. It reconnects until stopped.
type Listener struct {
	pool  *pgxpool.Pool
	pub   shared.ChangePublisher
	clock clock.Clock

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewListener(pool *pgxpool.Pool, pub shared.ChangePublisher, clk clock.Clock) *Listener {
	return &Listener{pool: pool, pub: pub, clock: clk}
}

func (l *Listener) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

func (l *Listener) run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		slog.Warn("change listener disconnected", "error", err, "retry_in", reconnectDelay.String())
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "acquire listener connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		return errs.Wrap(err, "listen")
	}
	slog.Info("change listener started", "channel", Channel)
	l.pub.Publish(ResyncEvent(l.clock.Now()))

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return errs.Wrap(err, "wait for notification")
		}
		ev, err := Decode(n.Payload, l.clock.Now())
		if err != nil {
			slog.Warn("dropping change notification", "error", err, "payload", n.Payload)
			continue
		}
		l.pub.Publish(ev)
	}
}
