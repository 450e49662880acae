package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/contrib/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Buffered channel of outbound payloads.
	Send chan []byte

	// User ID derived from authentication
	UserID string

	// Notification store, used to acknowledge reads from the socket.
	Notifications repository.NotificationRepository
}

// WSMessage is what clients may send over the socket. Delivery is
// one-directional for the most part; the only inbound action is
// acknowledging a notification as read.
type WSMessage struct {
	Type           string `json:"type"`
	NotificationID string `json:"notificationId,omitempty"`
}

// ReadPump pumps messages from the websocket connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// WritePump pumps payloads from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush any queued payloads into the same frame.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var wsMsg WSMessage
	if err := json.Unmarshal(message, &wsMsg); err != nil {
		log.Printf("Error unmarshalling message: %v", err)
		return
	}

	switch wsMsg.Type {
	case "mark_read":
		c.processMarkRead(&wsMsg)
	}
}

func (c *Client) processMarkRead(wsMsg *WSMessage) {
	if wsMsg.NotificationID == "" || c.Notifications == nil {
		return
	}

	notification, err := c.Notifications.FindByID(wsMsg.NotificationID)
	if err != nil {
		return
	}
	// Only the addressee may acknowledge over the socket.
	if notification.UserID != c.UserID {
		return
	}

	if err := c.Notifications.MarkRead(wsMsg.NotificationID); err != nil {
		log.Printf("Error marking notification read: %v", err)
		return
	}

	ackJSON, _ := json.Marshal(map[string]interface{}{
		"type":           "read_ack",
		"notificationId": wsMsg.NotificationID,
	})
	c.Send <- ackJSON
}
