package notify

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is a live push sent to connected clients. Type drives the
// client-side toast, Payload carries the event body.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type client struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub keeps the live websocket connections keyed by user. A user may
// hold several connections (tabs); a push fans out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*client]struct{}
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*client]struct{}),
		log:     log,
	}
}

// Register attaches a connection for the user and starts its pumps.
func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	c := &client{userID: userID, conn: conn, send: make(chan []byte, 32)}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

// Push delivers an event to every live connection of the user. Users
// without a connection are skipped; persisted notifications cover them.
func (h *Hub) Push(userID int64, ev Event) {
	body, err := sonic.Marshal(ev)
	if err != nil {
		h.log.Sugar().Errorw("notify encode failed", "type", ev.Type, "err", err)
		return
	}

	h.mu.RLock()
	conns := h.clients[userID]
	for c := range conns {
		select {
		case c.send <- body:
		default:
			// Slow consumer, drop the event rather than block the caller.
			h.log.Sugar().Warnw("notify dropped", "userId", userID, "type", ev.Type)
		}
	}
	h.mu.RUnlock()
}

// IsConnected reports whether the user has at least one live connection.
func (h *Hub) IsConnected(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
			if len(conns) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		// Clients never send payloads; the read loop only notices closes.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	for body := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, body); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
