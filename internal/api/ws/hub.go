package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"enhancives/internal/domain"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type TotalsUpdateData struct {
	Totals  map[string]int    `json:"totals"`
	Summary domain.CapSummary `json:"summary"`
}

type Hub struct {
	connections map[string]*websocket.Conn
	mu          sync.RWMutex
}

var globalHub *Hub
var once sync.Once

func GetHub() *Hub {
	once.Do(func() {
		globalHub = &Hub{
			connections: make(map[string]*websocket.Conn),
		}
	})
	return globalHub
}

func (h *Hub) Register(username string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[username] = conn
	log.Printf("[Hub] %s connected, %d connections", username, len(h.connections))
}

func (h *Hub) Unregister(username string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[username]; exists {
		conn.Close()
		delete(h.connections, username)
		log.Printf("[Hub] %s disconnected, %d connections", username, len(h.connections))
	}
}

func (h *Hub) SendToUser(username string, msg Message) error {
	h.mu.RLock()
	conn, exists := h.connections[username]
	h.mu.RUnlock()

	if !exists {
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// SendTotalsUpdate pushes the recomputed aggregate to a connected client after
// an item or equipment mutation.
func (h *Hub) SendTotalsUpdate(username string, totals map[string]int) error {
	msg := Message{
		Type: "totals_update",
		Data: TotalsUpdateData{
			Totals:  totals,
			Summary: domain.Summarize(domain.Classify(totals)),
		},
	}
	return h.SendToUser(username, msg)
}

func (h *Hub) IsConnected(username string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[username]
	return exists
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}
