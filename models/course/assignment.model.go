package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/dto"
)

type Assignment struct {
	gorm.Model
	CourseID        uint   `gorm:"index;not null"`
	Title           string `gorm:"not null"`
	Instructions    string
	DueDate         *time.Time `gorm:"index"`
	SubmissionTypes datatypes.JSONSlice[string]
	Materials       datatypes.JSONSlice[dto.Material]
	MaxPoints       float64 `gorm:"default:0"`

	Submissions []Submission `gorm:"constraint:OnDelete:CASCADE"`
}
