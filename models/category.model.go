package models

import (
	"time"

	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100;not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Slug        string `gorm:"size:100;not null;unique" json:"slug"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`
	SortOrder   int    `gorm:"default:0;index" json:"sortOrder"`

	// Binary image payload, served from /api/categories/:id/image and
	// never included in JSON responses.
	ImageData []byte `gorm:"type:longblob" json:"-"`
	ImageName string `gorm:"size:255" json:"imageName,omitempty"`
	ImageType string `gorm:"size:100" json:"imageType,omitempty"`
	ImageURL  string `gorm:"-" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Slug == "" {
		c.Slug = utils.Slugify(c.Name)
	}
	return nil
}

func (c *Category) AfterFind(tx *gorm.DB) error {
	c.SyncImageURL()
	return nil
}

// SyncImageURL synthesizes the image URL when binary data is present
func (c *Category) SyncImageURL() {
	if len(c.ImageData) > 0 {
		c.ImageURL = "/api/categories/" + c.ID + "/image"
	}
}
