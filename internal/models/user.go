package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name            string `gorm:"not null"`
	Email           string `gorm:"not null"`
	Username        string `gorm:"uniqueIndex;not null"`
	PasswordHash    string `gorm:"not null"`
	Bio             string
	ProfileImageURL string

	// Relationships
	Posts    []Post    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
