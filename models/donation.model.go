package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationType distinguishes money from goods
type DonationType string

const (
	DonationMonetary DonationType = "monetary"
	DonationItems    DonationType = "items"
)

func (t DonationType) Valid() bool {
	return t == DonationMonetary || t == DonationItems
}

// DonationStatus follows the pending -> approved|rejected transition;
// the move is admin-only and notifies the donor.
type DonationStatus string

const (
	DonationPending  DonationStatus = "pending"
	DonationApproved DonationStatus = "approved"
	DonationRejected DonationStatus = "rejected"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationApproved, DonationRejected:
		return true
	}
	return false
}

type Donation struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	DonorID      string         `gorm:"size:36;not null;index" json:"donorId"`
	OrphanageID  string         `gorm:"size:36;not null;index" json:"orphanageId"`
	DonationType DonationType   `gorm:"size:20;not null" json:"donationType"`
	Amount       float64        `json:"amount,omitempty"`
	ItemDesc     string         `gorm:"type:text" json:"itemDescription,omitempty"`
	Status       DonationStatus `gorm:"size:20;default:'pending';index" json:"status"`
	AdminMessage string         `gorm:"type:text" json:"adminMessage,omitempty"`

	// Reference encoded into the payment QR code for monetary donations.
	PaymentReference string `gorm:"size:36" json:"paymentReference,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Donor     *User      `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Orphanage *Orphanage `gorm:"foreignKey:OrphanageID" json:"orphanage,omitempty"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
