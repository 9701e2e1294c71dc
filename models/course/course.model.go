package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the aggregate root of the authoring model
type Course struct {
	gorm.Model
	Title            string `gorm:"not null"`
	Description      string
	Category         string `gorm:"index"`
	Level            string
	InstructorName   string
	InstructorAvatar string
	Thumbnail        string
	PromoVideo       string
	IsPublic         bool           `gorm:"default:false"`
	Project          datatypes.JSON // single embedded project, NULL when absent
	CreatedBy        uint           `gorm:"index"`

	Sections    []Section    `gorm:"constraint:OnDelete:CASCADE"`
	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE"`
}
