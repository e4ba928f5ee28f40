package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a text update posted by a user on behalf of their dog.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	DogID    uint   `gorm:"not null;index" json:"dog_id"`
	Dog      Dog    `gorm:"foreignKey:DogID" json:"dog"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LikeResult is the response payload of the like-toggle endpoint.
// Field names follow the documented HTTP contract.
type LikeResult struct {
	PostID      uint `json:"postId"`
	LikesCount  int  `json:"likesCount"`
	LikedByUser bool `json:"likedByUser"`
}
