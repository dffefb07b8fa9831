package models

import (
	"time"
)

// Favorite is a join record marking that a user has bookmarked a picture.
// Uniqueness of the (user, picture) pair is enforced by a lookup before insert in
// the service layer, not by a database constraint; concurrent toggles for the same
// pair can therefore race.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	PictureID uint      `gorm:"not null;index" json:"pictureId"`
	CreatedAt time.Time `json:"createdAt"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Picture Picture `gorm:"foreignKey:PictureID" json:"-"`
}
