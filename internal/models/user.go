// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Users are created on first login with an
// unseen username and are never updated or deleted afterwards.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Pictures  []Picture  `gorm:"foreignKey:UserID" json:"pictures,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"-"`
}
