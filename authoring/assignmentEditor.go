package authoring

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/pkg/errors"

	"lms/dto"
)

// AssignmentKind tells an editor whether it writes a keyed assignment or
// the course's single project.
type AssignmentKind int

const (
	KindAssignment AssignmentKind = iota
	KindProject
)

// AssignmentStores groups the backend calls either kind of editor may use.
type AssignmentStores interface {
	AssignmentStore
	CourseStore
}

// AssignmentEditor edits one assignment or the course project.
type AssignmentEditor struct {
	Title        string
	Instructions string
	DueDate      *time.Time
	MaxPoints    float64
	Materials    *MaterialList

	kind     AssignmentKind
	courseID string
	id       string
	types    []dto.SubmissionType
	store    AssignmentStores
}

func NewAssignmentEditor(courseID string, store AssignmentStores, uploader Uploader) *AssignmentEditor {
	return &AssignmentEditor{
		kind:      KindAssignment,
		courseID:  courseID,
		store:     store,
		Materials: NewMaterialList(uploader),
	}
}

func NewProjectEditor(courseID string, store AssignmentStores, uploader Uploader) *AssignmentEditor {
	e := NewAssignmentEditor(courseID, store, uploader)
	e.kind = KindProject
	return e
}

// LoadAssignmentEditor hydrates an editor of the given kind from a stored
// assignment or project.
func LoadAssignmentEditor(kind AssignmentKind, courseID string, a dto.Assignment, store AssignmentStores, uploader Uploader) *AssignmentEditor {
	e := NewAssignmentEditor(courseID, store, uploader)
	e.kind = kind
	e.id = a.ID
	e.Title = a.Title
	e.Instructions = a.Instructions
	e.MaxPoints = a.MaxPoints
	if a.DueDate != nil {
		due := *a.DueDate
		e.DueDate = &due
	}
	for _, t := range a.SubmissionTypes {
		_ = e.ToggleSubmissionType(t)
	}
	e.Materials = NewMaterialList(uploader, a.Materials...)
	return e
}

func (e *AssignmentEditor) ID() string           { return e.id }
func (e *AssignmentEditor) Kind() AssignmentKind { return e.kind }

// ToggleSubmissionType adds t to the allowed set, or removes it if present.
func (e *AssignmentEditor) ToggleSubmissionType(t dto.SubmissionType) error {
	if !t.Valid() {
		return ErrUnknownSubmission
	}
	for i, have := range e.types {
		if have == t {
			e.types = append(e.types[:i], e.types[i+1:]...)
			return nil
		}
	}
	e.types = append(e.types, t)
	return nil
}

// SubmissionTypes returns the selection in the order it was made.
func (e *AssignmentEditor) SubmissionTypes() []dto.SubmissionType {
	return append([]dto.SubmissionType(nil), e.types...)
}

func (e *AssignmentEditor) HasSubmissionType(t dto.SubmissionType) bool {
	for _, have := range e.types {
		if have == t {
			return true
		}
	}
	return false
}

type assignmentDraft struct {
	Title           string               `json:"title" validate:"required"`
	DueDate         *time.Time           `json:"dueDate" validate:"required"`
	SubmissionTypes []dto.SubmissionType `json:"submissionTypes" validate:"min=1"`
	MaxPoints       float64              `json:"maxPoints" validate:"gte=0"`
}

func (e *AssignmentEditor) Validate() error {
	verr := &ValidationError{}
	check(verr, assignmentDraft{
		Title:           strings.TrimSpace(e.Title),
		DueDate:         e.DueDate,
		SubmissionTypes: e.types,
		MaxPoints:       e.MaxPoints,
	})
	return verr.orNil()
}

func (e *AssignmentEditor) CanSave() bool { return e.Validate() == nil }

// DueThisWeek reports whether the due date falls in the current calendar week.
func (e *AssignmentEditor) DueThisWeek(at time.Time) bool {
	if e.DueDate == nil {
		return false
	}
	n := now.With(at)
	return !e.DueDate.Before(n.BeginningOfWeek()) && !e.DueDate.After(n.EndOfWeek())
}

func (e *AssignmentEditor) payload() dto.Assignment {
	return dto.Assignment{
		ID:              e.id,
		Title:           strings.TrimSpace(e.Title),
		Instructions:    strings.TrimSpace(e.Instructions),
		DueDate:         e.DueDate,
		SubmissionTypes: e.SubmissionTypes(),
		Materials:       e.Materials.Items(),
		MaxPoints:       e.MaxPoints,
	}
}

// Save persists the draft. A project is written by reading the course,
// replacing its project and writing the course back; a concurrent editor
// can overwrite it in between.
func (e *AssignmentEditor) Save(ctx context.Context) (*dto.Assignment, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.kind == KindProject {
		return e.saveProject(ctx)
	}

	a := e.payload()
	var (
		saved *dto.Assignment
		err   error
	)
	if e.id == "" {
		saved, err = e.store.CreateAssignment(ctx, e.courseID, a)
	} else {
		saved, err = e.store.UpdateAssignment(ctx, e.courseID, e.id, a)
	}
	if err != nil {
		return nil, errors.Wrap(err, "save assignment")
	}
	e.id = saved.ID
	return saved, nil
}

func (e *AssignmentEditor) saveProject(ctx context.Context) (*dto.Assignment, error) {
	course, err := e.store.GetCourse(ctx, e.courseID)
	if err != nil {
		return nil, errors.Wrap(err, "load course")
	}
	project := e.payload()
	switch {
	case project.ID != "":
	case course.Project != nil && course.Project.ID != "":
		project.ID = course.Project.ID
	default:
		project.ID = uuid.NewString()
	}
	project.CourseID = e.courseID

	updated, err := e.store.UpdateCourse(ctx, e.courseID, dto.CourseUpdate{Project: &project, ProjectSet: true})
	if err != nil {
		return nil, errors.Wrap(err, "save project")
	}
	e.id = project.ID
	if updated != nil && updated.Project != nil {
		return updated.Project, nil
	}
	return &project, nil
}

// Delete removes the assignment, or clears the course project, after confirm.
func (e *AssignmentEditor) Delete(ctx context.Context, confirm ConfirmFunc) error {
	if e.id == "" {
		return ErrNotSaved
	}
	noun := "assignment"
	if e.kind == KindProject {
		noun = "project"
	}
	if confirm == nil || !confirm("Delete this "+noun+"?") {
		return ErrNotConfirmed
	}
	var err error
	if e.kind == KindProject {
		_, err = e.store.UpdateCourse(ctx, e.courseID, dto.CourseUpdate{ProjectSet: true})
	} else {
		err = e.store.DeleteAssignment(ctx, e.courseID, e.id)
	}
	if err != nil {
		return errors.Wrapf(err, "delete %s", noun)
	}
	e.id = ""
	return nil
}
