package authoring

import (
	"context"

	"lms/dto"
)

type Uploader interface {
	Upload(ctx context.Context, category dto.UploadCategory, file dto.UploadFile) (*dto.UploadResult, error)
}

type SectionStore interface {
	ListSections(ctx context.Context, courseID string) ([]dto.Section, error)
	CreateSection(ctx context.Context, courseID string, in dto.SectionInput) (*dto.Section, error)
	UpdateSection(ctx context.Context, courseID, sectionID string, in dto.SectionInput) (*dto.Section, error)
	DeleteSection(ctx context.Context, courseID, sectionID string) error
}

type ModuleStore interface {
	CreateModule(ctx context.Context, courseID, sectionID string, in dto.ModuleInput) (*dto.Module, error)
	UpdateModule(ctx context.Context, courseID, sectionID, moduleID string, in dto.ModuleInput) (*dto.Module, error)
	DeleteModule(ctx context.Context, courseID, sectionID, moduleID string) error
}

type CourseStore interface {
	GetCourse(ctx context.Context, courseID string) (*dto.Course, error)
	UpdateCourse(ctx context.Context, courseID string, update dto.CourseUpdate) (*dto.Course, error)
}

type AssignmentStore interface {
	CreateAssignment(ctx context.Context, courseID string, a dto.Assignment) (*dto.Assignment, error)
	UpdateAssignment(ctx context.Context, courseID, assignmentID string, a dto.Assignment) (*dto.Assignment, error)
	DeleteAssignment(ctx context.Context, courseID, assignmentID string) error
}

type GradeStore interface {
	ListSubmissions(ctx context.Context, assignmentID string) ([]dto.Submission, error)
	ListProjectSubmissions(ctx context.Context, courseID string) ([]dto.Submission, error)
	GradeSubmission(ctx context.Context, submissionID string, in dto.GradeInput) (*dto.Submission, error)
}

// Notifier delivers broadcast notifications; callers treat it as fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n dto.Notification) error
}

type Enroller interface {
	EnrollAll(ctx context.Context, courseID string) (*dto.EnrollmentResult, error)
	EnrollUsers(ctx context.Context, courseID string, userIDs []string) (*dto.EnrollmentResult, error)
}

// API is everything the authoring screens need from the backend.
type API interface {
	Uploader
	SectionStore
	ModuleStore
	CourseStore
	AssignmentStore
	GradeStore
	Notifier
	Enroller
}

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// Confirmed is a ConfirmFunc that always agrees, for scripted callers.
func Confirmed(string) bool { return true }
