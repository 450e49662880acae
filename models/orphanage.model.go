package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a JSON-encoded list of strings in a text column
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

type Orphanage struct {
	ID               string `gorm:"primaryKey;size:36" json:"id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	ContactEmail     string `gorm:"size:100;not null" json:"contactEmail"`
	ContactPhone     string `gorm:"size:20" json:"contactPhone,omitempty"`
	Location         string `gorm:"size:255" json:"location"`
	Description      string `gorm:"type:text" json:"description,omitempty"`
	NeedsDescription string `gorm:"type:text" json:"needsDescription,omitempty"`

	CurrentChildren int `gorm:"default:0" json:"currentChildren"`
	Capacity        int `gorm:"default:0" json:"capacity"`

	// Verified gates public visibility; registrations start unverified.
	Verified        bool       `gorm:"default:false;index" json:"verified"`
	Rejected        bool       `gorm:"default:false" json:"rejected"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejectionReason,omitempty"`

	ImageURL string     `gorm:"size:500" json:"imageUrl,omitempty"`
	Images   StringList `gorm:"type:text" json:"images,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Orphanage) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Approve toggles the orphanage visible to the public
func (o *Orphanage) Approve() {
	now := time.Now()
	o.Verified = true
	o.Rejected = false
	o.ApprovedAt = &now
}

// RejectWith hides the orphanage and records why
func (o *Orphanage) RejectWith(reason string) {
	now := time.Now()
	o.Verified = false
	o.Rejected = true
	o.RejectedAt = &now
	o.RejectionReason = reason
}
