package models

import "gorm.io/gorm"

// Image rows are referenced by posts through the filename string only;
// there is no foreign key between the two tables.
type Image struct {
	gorm.Model

	UUID     string `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"size:255;not null"`
	MimeType string `gorm:"not null"`
	Content  []byte `gorm:"not null"`
}
