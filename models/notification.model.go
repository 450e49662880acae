package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types written as side effects of approval flows.
const (
	NotifProductApproved  = "PRODUCT_APPROVED"
	NotifProductRejected  = "PRODUCT_REJECTED"
	NotifDonationReceived = "DONATION_RECEIVED"
	NotifDonationStatus   = "DONATION_STATUS_UPDATE"
	NotifOrphanageStatus  = "ORPHANAGE_STATUS_UPDATE"
)

// Notification is an append-only per-recipient record with a read flag
type Notification struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	UserID  string `gorm:"size:36;not null;index" json:"userId"`
	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:255" json:"title"`
	Message string `gorm:"type:text" json:"message"`

	// Optional id of the entity that triggered the notification.
	ReferenceID string `gorm:"size:36" json:"referenceId,omitempty"`

	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`

	// Recipient, attached only on the admin cross-user listing.
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
