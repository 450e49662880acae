package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus tracks fulfilment; orders are recorded, not reconciled
// against product availability.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Order struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	BuyerID       string        `gorm:"size:36;not null;index" json:"buyerId"`
	Total         float64       `gorm:"not null" json:"total"`
	Status        OrderStatus   `gorm:"size:20;default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;default:'UNPAID'" json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Buyer *User       `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
}

type OrderItem struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string  `gorm:"size:36;not null;index" json:"orderId"`
	ProductID string  `gorm:"size:36;not null" json:"productId"`
	Name      string  `gorm:"size:255" json:"name"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
