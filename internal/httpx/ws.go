package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ariefcatur/demo-backends/internal/events"
)

const defaultIdleTimeout = 60 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type snapshotMessage struct {
	Service string `json:"service"`
	Data    any    `json:"data"`
}

// SnapshotHandler sends the whole dataset as one text frame per connection
// and never sends again. Inbound frames are discarded unread.
type SnapshotHandler struct {
	Service     string
	Load        func() (any, int)
	Publisher   events.Publisher
	Log         *slog.Logger
	IdleTimeout time.Duration
}

func (h *SnapshotHandler) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		h.Log.Debug("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	data, n := h.Load()
	msg, err := json.Marshal(snapshotMessage{Service: h.Service, Data: data})
	if err != nil {
		h.Log.Error("encode snapshot", "err", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		h.Log.Warn("send snapshot", "remote", r.RemoteAddr, "err", err)
		return
	}

	session := uuid.NewString()
	h.Log.Info("snapshot served", "session", session, "records", n, "remote", r.RemoteAddr)
	h.Publisher.Publish(events.NewSnapshotServed(h.Service, middleware.GetReqID(r.Context()), events.SnapshotServedPayload{
		Service:    h.Service,
		SessionID:  session,
		Records:    n,
		RemoteAddr: r.RemoteAddr,
	}))

	h.hold(conn)
}

// hold keeps the connection until the peer goes away or stays silent past
// the idle timeout. Reading is what lets gorilla answer pings and closes.
func (h *SnapshotHandler) hold(conn *websocket.Conn) {
	idle := h.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	for {
		_ = conn.SetReadDeadline(time.Now().Add(idle))
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
