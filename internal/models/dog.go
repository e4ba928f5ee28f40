package models

import (
	"time"

	"gorm.io/gorm"
)

// Dog represents a user's dog profile. Each owner has at most one dog;
// the unique index on OwnerID is the backstop for concurrent creates.
type Dog struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
	OwnerID uint   `gorm:"not null;uniqueIndex" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID" json:"-"`
	// Avatar is the public URL of the stored avatar asset.
	Avatar string `json:"avatar"`
	// AvatarHandle is the asset store's opaque delete handle for Avatar.
	AvatarHandle string         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
