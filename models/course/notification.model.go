package course

import (
	"time"

	"gorm.io/gorm"
)

// Notification is queued by the API and mailed by the dispatcher. A global
// notification goes to every user, otherwise to the enrolled users of
// CourseID.
type Notification struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Message   string
	Link      string
	Global    bool `gorm:"default:false"`
	CourseID  *uint
	CreatedBy uint
	SentAt    *time.Time `gorm:"index"`
	Attempts  int        `gorm:"default:0"`
	LastError string
}
