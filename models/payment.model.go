package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentState tracks an individual payment attempt against an order,
// distinct from Order.PaymentStatus which summarizes the order itself.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "PENDING"
	PaymentStateCompleted PaymentState = "COMPLETED"
	PaymentStateFailed    PaymentState = "FAILED"
)

// Payment records a mobile-money or bank transaction for an order.
type Payment struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	OrderID       string       `gorm:"size:36;not null;index" json:"orderId"`
	UserID        string       `gorm:"size:36;not null;index" json:"userId"`
	Amount        float64      `gorm:"not null" json:"amount"`
	Currency      string       `gorm:"size:8;default:'XAF'" json:"currency"`
	Method        string       `gorm:"size:30" json:"method"`
	Provider      string       `gorm:"size:50" json:"provider"`
	Status        PaymentState `gorm:"size:20;default:'PENDING'" json:"status"`
	TransactionID string       `gorm:"size:100" json:"transactionId"`
	Reference     string       `gorm:"size:50" json:"reference"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
