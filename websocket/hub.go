// Package websocket pushes fused overlay snapshots to connected rendering
// surfaces, so the map updates without the client re-polling.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"go-kdms/types"
)

// BroadcastMessage is the envelope for every frame sent to subscribers.
type BroadcastMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// OverlaySnapshot is the payload for overlay frames.
type OverlaySnapshot struct {
	Views []types.ResolvedCountyView `json:"views"`
	Count int                        `json:"count"`
}

// EditFailure is the payload for edit-failure frames, the user-visible
// signal that an optimistic resolve was rejected or timed out.
type EditFailure struct {
	DisasterID int    `json:"disaster_id"`
	Reason     string `json:"reason"`
}

// Hub manages WebSocket connections and broadcasting
type Hub struct {
	clients map[*Client]bool

	broadcast chan []byte

	Register   chan *Client
	Unregister chan *Client

	mutex sync.RWMutex

	connectedClients int
	lastBroadcastAt  time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mutex.Lock()
			h.clients[client] = true
			h.connectedClients = len(h.clients)
			h.mutex.Unlock()
			log.Printf("Overlay subscriber connected. Total clients: %d", h.connectedClients)

		case client := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.connectedClients = len(h.clients)
			}
			h.mutex.Unlock()
			log.Printf("Overlay subscriber disconnected. Total clients: %d", h.connectedClients)

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.connectedClients = len(h.clients)
			h.lastBroadcastAt = time.Now()
			h.mutex.Unlock()
		}
	}
}

// BroadcastOverlay sends the full fused view set to all subscribers.
func (h *Hub) BroadcastOverlay(views []types.ResolvedCountyView) {
	h.send(BroadcastMessage{
		Type:      "overlay",
		Data:      OverlaySnapshot{Views: views, Count: len(views)},
		Timestamp: time.Now(),
	})
}

// BroadcastEditFailure tells subscribers an optimistic resolve was rolled
// back so they can surface a toast.
func (h *Hub) BroadcastEditFailure(disasterID int, reason string) {
	h.send(BroadcastMessage{
		Type:      "edit_failure",
		Data:      EditFailure{DisasterID: disasterID, Reason: reason},
		Timestamp: time.Now(),
	})
}

func (h *Hub) send(msg BroadcastMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}
	h.broadcast <- data
}

// GetStats returns current hub statistics
func (h *Hub) GetStats() (int, time.Time) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.connectedClients, h.lastBroadcastAt
}
