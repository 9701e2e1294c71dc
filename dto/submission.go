package dto

import "time"

type SubmissionFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// Submission is a learner-produced answer. A non-nil Grade means graded.
type Submission struct {
	ID             string          `json:"id,omitempty"`
	AssignmentID   string          `json:"assignmentId"`
	UserID         string          `json:"userId,omitempty"`
	SubmissionType SubmissionType  `json:"submissionType"`
	Text           string          `json:"text,omitempty"`
	Link           string          `json:"link,omitempty"`
	File           *SubmissionFile `json:"file,omitempty"`
	Grade          *float64        `json:"grade,omitempty"`
	Feedback       string          `json:"feedback,omitempty"`
	SubmittedAt    time.Time       `json:"submittedAt"`
}

func (s Submission) IsGraded() bool { return s.Grade != nil }

type GradeInput struct {
	Grade    float64 `json:"grade"`
	Feedback string  `json:"feedback"`
}
