package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "PENDING"
	ReviewApproved ReviewStatus = "APPROVED"
	ReviewRejected ReviewStatus = "REJECTED"
)

// Review is a buyer's product review, surfaced on the admin dashboard
// for moderation.
type Review struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	UserID    string       `gorm:"size:36;not null;index" json:"userId"`
	ProductID string       `gorm:"size:36;not null;index" json:"productId"`
	Rating    int          `gorm:"not null" json:"rating"`
	Title     string       `gorm:"size:255" json:"title"`
	Comment   string       `gorm:"type:text" json:"comment"`
	Status    ReviewStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Helpful   int          `gorm:"default:0" json:"helpful"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
