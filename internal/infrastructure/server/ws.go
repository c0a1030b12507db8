package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/ayankousky/interest-calculator/internal/infrastructure/notify"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// wsWriteTimeout bounds a single write to one WebSocket client
const wsWriteTimeout = 5 * time.Second

// Hub fans served calculations out to connected WebSocket clients. It
// implements notify.Client so it can be subscribed to the quotes topic like
// any other notifier
type Hub struct {
	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
	logger   *zap.Logger
}

var _ notify.Client = &Hub{}

// NewHub creates a new WebSocket hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger.With(zap.String("component", "ws_hub")),
	}
}

// HandleWS upgrades the connection and keeps it registered until the client
// disconnects. Inbound messages are discarded; the stream is one-way
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	h.register(conn)
	defer h.unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Send broadcasts an event to every connected client. Clients that fail to
// accept the write are dropped
func (h *Hub) Send(_ context.Context, event notify.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("Dropping WebSocket client", zap.Error(err))
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
	return nil
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every client, used on shutdown
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
