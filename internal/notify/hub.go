package notify

import (
	"encoding/json"
	"sync"

	"github.com/Harry9429/Distro-app/pkg/logger"
)

// Event is pushed to connected consoles when server-side state changes
// (order approved, invoice overdue, application reviewed).
type Event struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Client is one websocket session.
type Client struct {
	Hub    *Hub
	Conn   *Conn
	UserID uint
	Role   string
	Send   chan []byte
}

// Hub tracks connected clients and fans events out to them.
type Hub struct {
	// UserID -> sessions, so a user with two tabs open gets both updated
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan []byte, 1024),
	}
}

// Run processes registrations and broadcasts. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			logger.Info("Notification client connected", map[string]interface{}{
				"user_id": client.UserID,
				"role":    client.Role,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			// a session can be unregistered twice (buffer-full drop plus the
			// read pump's defer); only the removal that finds it closes Send
			found := false
			if sessions, ok := h.clients[client.UserID]; ok {
				remaining := make([]*Client, 0, len(sessions))
				for _, c := range sessions {
					if c == client {
						found = true
						continue
					}
					remaining = append(remaining, c)
				}
				if len(remaining) == 0 {
					delete(h.clients, client.UserID)
				} else {
					h.clients[client.UserID] = remaining
				}
			}
			if found {
				close(client.Send)
			}
			h.mu.Unlock()
			if found {
				logger.Info("Notification client disconnected", map[string]interface{}{
					"user_id": client.UserID,
				})
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			for userID, sessions := range h.clients {
				for _, client := range sessions {
					select {
					case client.Send <- message:
					default:
						// send buffer full, drop the session
						go h.Unregister(client)
						logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
							"user_id": userID,
						})
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast delivers an event to every connected session. Events are
// best-effort: if the broadcast queue is full the event is dropped.
func (h *Hub) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", err, nil)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		logger.Warn("Broadcast channel full, event dropped", map[string]interface{}{
			"type": event.Type,
		})
	}
}

// SendToUser delivers an event to one user's sessions only.
func (h *Hub) SendToUser(userID uint, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event", err, nil)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			logger.Warn("Client send buffer full, event dropped", map[string]interface{}{
				"user_id": userID,
			})
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsUserOnline reports whether the user has at least one open session.
func (h *Hub) IsUserOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}
