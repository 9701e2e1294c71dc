package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/dto"
)

// Module is the smallest learning unit within a section
type Module struct {
	gorm.Model
	SectionID   uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Description string
	Objectives  datatypes.JSONSlice[string]
	Type        string `gorm:"not null"` // video, pdf, quiz
	ContentURL  string
	Quiz        datatypes.JSON // {"questions": [...]}, NULL unless quiz
	Survey      datatypes.JSON
	Materials   datatypes.JSONSlice[dto.Material]
	OrderIndex  int `gorm:"default:0"`
}
