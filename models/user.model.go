package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleClient    Role = "CLIENT"
	RoleOrphanage Role = "ORPHANAGE"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleOrphanage:
		return true
	}
	return false
}

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Credentials
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	FirstName string `gorm:"size:50" json:"firstName"`
	LastName  string `gorm:"size:50" json:"lastName"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`

	// Role & Status
	Role          Role `gorm:"size:20;default:'CLIENT';index" json:"role"`
	IsActive      bool `gorm:"default:true" json:"isActive"`
	EmailVerified bool `gorm:"default:false" json:"emailVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// FullName joins first and last name for display
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
