package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	Body   string `gorm:"not null"`
	PostID uint   `gorm:"not null;index"`
	UserID uint   `gorm:"not null;index"`

	// Relationships
	Post Post `gorm:"foreignKey:PostID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
