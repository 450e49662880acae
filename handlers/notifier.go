package handlers

import (
	"encoding/json"
	"log"

	"github.com/ILoveTech2001/JALAI-2/internal/ws"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
)

// Notifier appends a notification record and, when the recipient has a
// live websocket session, pushes it immediately.
type Notifier struct {
	store repository.NotificationRepository
	hub   *ws.Hub
}

func NewNotifier(store repository.NotificationRepository, hub *ws.Hub) *Notifier {
	return &Notifier{store: store, hub: hub}
}

// Notify records the notification; delivery failures are logged, never
// propagated to the triggering request.
func (n *Notifier) Notify(userID, notifType, title, message, referenceID string) {
	notification := models.Notification{
		UserID:      userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := n.store.Create(&notification); err != nil {
		log.Printf("Failed to store notification for user %s: %v", userID, err)
		return
	}

	if n.hub == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return
	}
	n.hub.SendToUser(userID, payload)
}
