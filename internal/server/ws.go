package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/control"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// Telemetry is one pipeline update pushed to WebSocket clients.
type Telemetry struct {
	Output    control.Output `json:"output"`
	Mode      string         `json:"mode"`
	FPS       float64        `json:"fps"`
	Timestamp int64          `json:"timestamp"`
}

// TelemetryHandler broadcasts real-time controller output via WebSocket.
// The pipeline pushes updates with Publish; the handler never touches the
// camera or detector itself.
type TelemetryHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewTelemetryHandler creates a new TelemetryHandler.
func NewTelemetryHandler() *TelemetryHandler {
	return &TelemetryHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *TelemetryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends a telemetry update to all connected clients. Returns
// immediately when no clients are connected.
func (h *TelemetryHandler) Publish(output control.Output, mode control.Mode, fps float64) {
	h.mu.RLock()
	if len(h.clients) == 0 {
		h.mu.RUnlock()
		return
	}
	h.mu.RUnlock()

	msg, err := json.Marshal(Telemetry{
		Output:    output,
		Mode:      string(mode),
		FPS:       fps,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
	h.mu.RUnlock()
}

// ClientCount returns the number of connected clients.
func (h *TelemetryHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
