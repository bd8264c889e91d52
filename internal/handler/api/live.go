package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveWriteWait  = 10 * time.Second
	livePongWait   = 60 * time.Second
	livePingPeriod = 30 * time.Second
	liveBuffer     = 64
)

// LiveHandler streams committed changes to front-desk screens so lists and
// open bookings refresh without polling.
type LiveHandler struct {
	feed     shared.ChangeFeed
	upgrader websocket.Upgrader
}

func NewLiveHandler(feed shared.ChangeFeed, cfg config.Config) *LiveHandler {
	origins := cfg.CORS.AllowOrigins
	return &LiveHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(origins, origin)
			},
		},
	}
}

// @Summary Live change feed
// @Description Websocket upgrade. Each message is one committed change event as JSON.
// @Tags live
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /api/live [get]
func (h *LiveHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response.
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	staffID, _ := middleware.GetStaffID(c)
	slog.Info("live feed connected", "staff_id", staffID)

	events := make(chan shared.ChangeEvent, liveBuffer)
	overflow := make(chan struct{})
	unsubscribe := h.feed.Subscribe(func(ev shared.ChangeEvent) {
		select {
		case events <- ev:
		default:
			select {
			case <-overflow:
			default:
				close(overflow)
			}
		}
	})

	done := make(chan struct{})
	go h.readLoop(conn, done)
	h.writeLoop(conn, events, overflow, done)

	unsubscribe()
	_ = conn.Close()
	slog.Info("live feed disconnected", "staff_id", staffID)
}

// readLoop discards client messages and closes done when the peer goes away.
func (h *LiveHandler) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("live feed read failed", "error", err)
			}
			return
		}
	}
}

func (h *LiveHandler) writeLoop(conn *websocket.Conn, events <-chan shared.ChangeEvent, overflow, done <-chan struct{}) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-overflow:
			// Slow consumer. The client reconnects and reloads.
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"),
				time.Now().Add(liveWriteWait))
			return
		case ev := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
