package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductCondition grades the wear of a listed item
type ProductCondition string

const (
	ConditionNew     ProductCondition = "NEW"
	ConditionLikeNew ProductCondition = "LIKE_NEW"
	ConditionGood    ProductCondition = "GOOD"
	ConditionFair    ProductCondition = "FAIR"
	ConditionPoor    ProductCondition = "POOR"
)

func (c ProductCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ProductStatus tracks the approval lifecycle of a listing
type ProductStatus string

const (
	StatusPendingApproval ProductStatus = "PENDING_APPROVAL"
	StatusActive          ProductStatus = "ACTIVE"
	StatusRejected        ProductStatus = "REJECTED"
	StatusSold            ProductStatus = "SOLD"
	StatusInactive        ProductStatus = "INACTIVE"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusActive, StatusRejected, StatusSold, StatusInactive:
		return true
	}
	return false
}

type Product struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description,omitempty"`
	Price       float64          `gorm:"not null;index" json:"price"`
	Condition   ProductCondition `gorm:"size:20;default:'GOOD'" json:"condition"`
	Status      ProductStatus    `gorm:"size:20;default:'PENDING_APPROVAL';index" json:"status"`

	// Binary image payload; only the synthesized URL goes out in JSON.
	ImageData []byte `gorm:"type:longblob" json:"-"`
	ImageName string `gorm:"size:255" json:"imageName,omitempty"`
	ImageType string `gorm:"size:100" json:"imageType,omitempty"`
	ImageURL  string `gorm:"-" json:"imageUrl,omitempty"`

	SellerID   string `gorm:"size:36;not null;index" json:"sellerId"`
	CategoryID string `gorm:"size:36;not null;index" json:"categoryId"`

	Views    int  `gorm:"default:0" json:"views"`
	Featured bool `gorm:"default:false;index" json:"featured"`

	// Approval metadata
	SoldAt          *time.Time `json:"soldAt,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy      *string    `gorm:"size:36" json:"approvedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Seller   *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.SyncImageURL()
	return nil
}

// SyncImageURL synthesizes the image URL when binary data is present
func (p *Product) SyncImageURL() {
	if len(p.ImageData) > 0 {
		p.ImageURL = "/api/products/" + p.ID + "/image"
	}
}

// Approve moves the listing to ACTIVE and stamps the approver.
// Re-approving simply re-stamps; there is no double-approval guard.
func (p *Product) Approve(adminID string) {
	now := time.Now()
	p.Status = StatusActive
	p.ApprovedAt = &now
	p.ApprovedBy = &adminID
}

// Reject marks the listing rejected with the given reason
func (p *Product) Reject(reason string) {
	now := time.Now()
	p.Status = StatusRejected
	p.RejectedAt = &now
	p.RejectionReason = reason
}

// MarkSold stamps the sale time and flips the status
func (p *Product) MarkSold() {
	now := time.Now()
	p.Status = StatusSold
	p.SoldAt = &now
}
