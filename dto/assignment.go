package dto

import "time"

// SubmissionType is a way a learner may answer an assignment.
type SubmissionType string

const (
	SubmissionText       SubmissionType = "text"
	SubmissionFileUpload SubmissionType = "file_upload"
	SubmissionLink       SubmissionType = "link"
)

func (t SubmissionType) Valid() bool {
	return t == SubmissionText || t == SubmissionFileUpload || t == SubmissionLink
}

// DefaultMaxPoints applies when an assignment does not set MaxPoints.
const DefaultMaxPoints = 100

// Material is an uploaded file attached to an assignment, project or module.
type Material struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Assignment describes one piece of work learners submit against. A project has the same shape and
// is stored on Course.Project.
type Assignment struct {
	ID              string           `json:"id,omitempty"`
	CourseID        string           `json:"courseId,omitempty"`
	Title           string           `json:"title"`
	Instructions    string           `json:"instructions"`
	DueDate         *time.Time       `json:"dueDate"`
	SubmissionTypes []SubmissionType `json:"submissionTypes"`
	Materials       []Material       `json:"materials"`
	MaxPoints       float64          `json:"maxPoints,omitempty"`
}

// EffectiveMaxPoints returns MaxPoints or DefaultMaxPoints when unset.
func (a Assignment) EffectiveMaxPoints() float64 {
	if a.MaxPoints <= 0 {
		return DefaultMaxPoints
	}
	return a.MaxPoints
}
