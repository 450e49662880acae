package ws

import (
	"log"
	"sync"
)

// Hub maintains the set of active notification clients and routes
// payloads to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Payloads destined for every connected client.
	Broadcast chan []byte

	// Map to quickly find clients by UserID (critical for targeted delivery)
	userClients map[string][]*Client

	// Mutex to protect the userClients map
	mutex sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Client),
		Unregister:  make(chan *Client),
		clients:     make(map[*Client]bool),
		userClients: make(map[string][]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			h.addUserClient(client)
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.removeUserClient(client)
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// addUserClient registers a client under its user ID. A user can hold
// several connections at once (multiple tabs or devices).
func (h *Hub) addUserClient(client *Client) {
	h.mutex.Lock()
	h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
	count := len(h.userClients[client.UserID])
	h.mutex.Unlock()

	log.Printf("User %s connected. Total connections for user: %d", client.UserID, count)
}

// removeUserClient removes a client from the per-user map.
func (h *Hub) removeUserClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	userConns := h.userClients[client.UserID]
	for i, conn := range userConns {
		if conn == client {
			h.userClients[client.UserID] = append(userConns[:i], userConns[i+1:]...)
			break
		}
	}

	count := len(h.userClients[client.UserID])
	if count == 0 {
		delete(h.userClients, client.UserID)
		log.Printf("User %s disconnected", client.UserID)
	} else {
		log.Printf("User %s disconnected (still has %d connections)", client.UserID, count)
	}
}

// SendToUser sends a payload to a specific user (all their active connections).
// Slow connections are evicted through the Run loop, which owns the
// client set and the Send channel close.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mutex.Lock()
	conns := append([]*Client(nil), h.userClients[userID]...)
	h.mutex.Unlock()

	for _, client := range conns {
		select {
		case client.Send <- message:
		default:
			h.Unregister <- client
		}
	}
}

// IsUserOnline checks if a user has any active WebSocket connection.
func (h *Hub) IsUserOnline(userID string) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	clients, ok := h.userClients[userID]
	return ok && len(clients) > 0
}
