// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered dog owner.
// Email is stored lowercase so uniqueness is case-insensitive.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	IsPremium bool           `gorm:"not null;default:false" json:"is_premium"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Dog       *Dog           `gorm:"foreignKey:OwnerID" json:"dog,omitempty"`
}
