package course

import "gorm.io/gorm"

// Section groups modules; display order is OrderIndex, then ID.
type Section struct {
	gorm.Model
	CourseID    uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string
	OrderIndex  int `gorm:"default:0"`

	Modules []Module `gorm:"constraint:OnDelete:CASCADE"`
}
