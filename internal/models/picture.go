package models

import (
	"time"
)

// Picture represents a shared picture URL. Pictures are immutable after creation.
type Picture struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `gorm:"not null" json:"url"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"createdAt"`

	// IsFavorite indicates whether the requesting user favorited this picture.
	// Computed per request on secure listings, never persisted.
	IsFavorite bool `gorm:"-" json:"isFavorite"`

	Favorites []Favorite `gorm:"foreignKey:PictureID" json:"-"`
}
