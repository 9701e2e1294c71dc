package course

import "gorm.io/gorm"

// Enrollment links a user to a course
type Enrollment struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID uint   `gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Status   string `gorm:"default:'ENROLLED'"`
	Source   string `gorm:"default:'ADMIN'"` // ADMIN, ENROLL_ALL
}
