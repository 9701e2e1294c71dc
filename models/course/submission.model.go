package course

import (
	"time"

	"gorm.io/gorm"
)

// Submission is a learner's answer to an assignment row, or to the project
// embedded on a course (ProjectID set, AssignmentID nil). GradedAt is set
// once a grade exists.
type Submission struct {
	gorm.Model
	AssignmentID   *uint  `gorm:"index"`
	CourseID       uint   `gorm:"index"`
	ProjectID      string `gorm:"index"`
	UserID         uint   `gorm:"index;not null"`
	SubmissionType string `gorm:"not null"`
	Text           string
	Link           string
	FileURL        string
	FileName       string
	FileType       string
	FileSize       int64
	Grade          *float64
	Feedback       string
	GradedAt       *time.Time
	GradedBy       uint
}
