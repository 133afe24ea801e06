package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/htmlify/pkg/middleware"
)

// LiveMessageType is the type of a live message.
type LiveMessageType string

const (
	LiveTypeHello   LiveMessageType = "hello"
	LiveTypeReplace LiveMessageType = "replace"
)

// LiveMessage is sent to browsers over /live.
type LiveMessage struct {
	Type LiveMessageType `json:"type"`
	ID   string          `json:"id,omitempty"`
	HTML string          `json:"html,omitempty"`
}

const liveWriteTimeout = 5 * time.Second

type liveClient struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes
}

func (c *liveClient) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// LiveHub tracks live preview connections and pushes document
// replacements to them.
type LiveHub struct {
	clients  map[string]*liveClient
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	metrics  *middleware.Metrics
	logger   *slog.Logger

	// current returns the HTML a new client starts with.
	current func() string
}

// NewLiveHub creates a hub. current may be nil.
func NewLiveHub(checkOrigin func(r *http.Request) bool, current func() string, metrics *middleware.Metrics, logger *slog.Logger) *LiveHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveHub{
		clients: make(map[string]*liveClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		metrics: metrics,
		logger:  logger.With("component", "live"),
		current: current,
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until the
// client goes away. The client is greeted with its ID and the current HTML.
func (h *LiveHub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", "error", err)
		return
	}

	client := &liveClient{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	h.clients[client.id] = client
	h.mu.Unlock()
	h.metrics.ClientConnected()
	h.logger.Debug("client connected", "client_id", client.id)

	if data, err := json.Marshal(LiveMessage{Type: LiveTypeHello, ID: client.id}); err == nil {
		_ = client.send(data)
	}
	if h.current != nil {
		if data, err := json.Marshal(LiveMessage{Type: LiveTypeReplace, HTML: h.current()}); err == nil {
			_ = client.send(data)
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(client)
}

// Broadcast sends a replace message with html to every client. Clients
// whose write fails are dropped.
func (h *LiveHub) Broadcast(html string) {
	data, err := json.Marshal(LiveMessage{Type: LiveTypeReplace, HTML: html})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*liveClient, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.send(data); err != nil {
			h.logger.Debug("dropping client", "client_id", client.id, "error", err)
			h.remove(client)
		}
	}
	h.metrics.RecordBroadcast()
}

func (h *LiveHub) remove(client *liveClient) {
	h.mu.Lock()
	_, ok := h.clients[client.id]
	delete(h.clients, client.id)
	h.mu.Unlock()

	if ok {
		h.metrics.ClientDisconnected()
		h.logger.Debug("client disconnected", "client_id", client.id)
	}
	client.conn.Close()
}

// ClientCount returns the number of connected clients.
func (h *LiveHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *LiveHub) Close() {
	h.mu.RLock()
	clients := make([]*liveClient, 0, len(h.clients))
	for _, client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.remove(client)
	}
}

// LiveScript connects to /live and swaps #htmlify-root on replace messages.
const LiveScript = `(function() {
    'use strict';
    var delay = 1000;
    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/live');
        ws.onopen = function() { delay = 1000; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'replace') {
                var root = document.getElementById('htmlify-root');
                if (root) { root.innerHTML = msg.html || ''; }
            }
        };
        ws.onclose = function() {
            setTimeout(function() {
                delay = Math.min(delay * 2, 30000);
                connect();
            }, delay);
        };
        ws.onerror = function() { ws.close(); };
    }
    connect();
})();`
