package authoring

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/dto"
)

func TestToggleSubmissionTypes(t *testing.T) {
	e := NewAssignmentEditor("course-1", newFakeAPI(), nil)
	require.NoError(t, e.ToggleSubmissionType(dto.SubmissionLink))
	require.NoError(t, e.ToggleSubmissionType(dto.SubmissionText))
	assert.Equal(t, []dto.SubmissionType{dto.SubmissionLink, dto.SubmissionText}, e.SubmissionTypes())

	require.NoError(t, e.ToggleSubmissionType(dto.SubmissionLink))
	assert.Equal(t, []dto.SubmissionType{dto.SubmissionText}, e.SubmissionTypes())
	assert.False(t, e.HasSubmissionType(dto.SubmissionLink))

	assert.ErrorIs(t, e.ToggleSubmissionType("video"), ErrUnknownSubmission)
}

func TestAssignmentValidation(t *testing.T) {
	api := newFakeAPI()
	e := NewAssignmentEditor("course-1", api, nil)

	_, err := e.Save(context.Background())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Title is required!", verr.Fields["title"])
	assert.Equal(t, "Due date is required!", verr.Fields["dueDate"])
	assert.Equal(t, "Select at least 1 submission types!", verr.Fields["submissionTypes"])
	assert.Equal(t, 0, api.total())

	due := time.Now().Add(48 * time.Hour)
	e.Title = "Essay"
	e.DueDate = &due
	assert.False(t, e.CanSave())
	require.NoError(t, e.ToggleSubmissionType(dto.SubmissionFileUpload))
	assert.True(t, e.CanSave())
}

func validAssignment(t *testing.T, e *AssignmentEditor) {
	t.Helper()
	due := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	e.Title = "Final project"
	e.Instructions = "Build something"
	e.DueDate = &due
	require.NoError(t, e.ToggleSubmissionType(dto.SubmissionLink))
}

func TestAssignmentSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	e := NewAssignmentEditor("course-1", api, api)
	validAssignment(t, e)
	_, err := e.Materials.Upload(ctx, dto.UploadFile{Name: "brief.pdf", Content: strings.NewReader("x")})
	require.NoError(t, err)

	saved, err := e.Save(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Len(t, saved.Materials, 1)

	e.Title = "Final essay"
	_, err = e.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("CreateAssignment"))
	assert.Equal(t, 1, api.count("UpdateAssignment"))
	require.Len(t, api.assignments, 1)
	assert.Equal(t, "Final essay", api.assignments[0].Title)

	require.NoError(t, e.Delete(ctx, Confirmed))
	assert.Empty(t, api.assignments)
	assert.ErrorIs(t, e.Delete(ctx, Confirmed), ErrNotSaved)
}

func TestProjectIsStoredOnCourse(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	e := NewProjectEditor("course-1", api, api)
	validAssignment(t, e)

	saved, err := e.Save(ctx)
	require.NoError(t, err)
	require.NotNil(t, api.course.Project)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, saved.ID, api.course.Project.ID)
	assert.Equal(t, 1, api.count("GetCourse"))
	assert.Equal(t, 0, api.count("CreateAssignment"))

	// a reopened editor keeps the same project id
	again := LoadAssignmentEditor(KindProject, "course-1", *api.course.Project, api, api)
	again.Title = "Capstone"
	_, err = again.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, api.course.Project.ID)
	assert.Equal(t, "Capstone", api.course.Project.Title)

	assert.ErrorIs(t, again.Delete(ctx, func(string) bool { return false }), ErrNotConfirmed)
	require.NoError(t, again.Delete(ctx, Confirmed))
	assert.Nil(t, api.course.Project)
}

func TestProjectReusesExistingCourseProjectID(t *testing.T) {
	api := newFakeAPI()
	api.course.Project = &dto.Assignment{ID: "p-1", Title: "Old"}
	e := NewProjectEditor("course-1", api, api)
	validAssignment(t, e)

	_, err := e.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p-1", api.course.Project.ID)
	assert.Equal(t, "p-1", e.ID())
}

func TestDueThisWeek(t *testing.T) {
	e := NewAssignmentEditor("course-1", newFakeAPI(), nil)
	at := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	assert.False(t, e.DueThisWeek(at))

	due := at.Add(24 * time.Hour)
	e.DueDate = &due
	assert.True(t, e.DueThisWeek(at))

	later := at.AddDate(0, 0, 10)
	e.DueDate = &later
	assert.False(t, e.DueThisWeek(at))
}
