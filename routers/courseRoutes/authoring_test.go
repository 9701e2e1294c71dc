package courseRoutes

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/apiclient"
	"lms/authoring"
	"lms/dto"
	courseModels "lms/models/course"
)

var _ authoring.API = (*apiclient.Client)(nil)

// serve runs the app on a loopback port and returns its base URL.
func (e *testEnv) serve(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go e.app.Listener(ln)
	t.Cleanup(func() { _ = e.app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestAuthoringAgainstLiveServer(t *testing.T) {
	env := newTestEnv(t)
	baseURL := env.serve(t)
	ctx := context.Background()
	staff := apiclient.New(baseURL, apiclient.StaticToken(env.staff), apiclient.WithTimeout(5*time.Second))
	learner := apiclient.New(baseURL, apiclient.StaticToken(env.learner), apiclient.WithTimeout(5*time.Second))

	course, err := staff.CreateCourse(ctx, dto.Course{
		Title:    "Go Basics",
		Category: dto.CategoryDevelopment,
		Level:    dto.LevelBeginner,
	})
	require.NoError(t, err)
	require.NotEmpty(t, course.ID)

	t.Run("video module keeps its URL", func(t *testing.T) {
		tree := authoring.NewContentTree(course.ID, staff, staff)
		require.NoError(t, tree.Load(ctx))
		section, err := tree.AddSection(ctx, "Week 1", "")
		require.NoError(t, err)

		editor, err := tree.NewModule(section.ID)
		require.NoError(t, err)
		editor.Title = "Intro"
		editor.SetURL("https://youtu.be/abc")
		saved, err := tree.SaveModule(ctx, section.ID, editor)
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/abc", saved.ContentURL)

		stored, ok := tree.Section(section.ID)
		require.True(t, ok)
		require.Len(t, stored.Modules, 1)
		assert.Equal(t, "https://youtu.be/abc", stored.Modules[0].ContentURL)
		assert.Equal(t, dto.ContentVideo, stored.Modules[0].Type)
		assert.True(t, tree.IsExpanded(section.ID))
	})

	t.Run("pdf module uploads its file first", func(t *testing.T) {
		tree := authoring.NewContentTree(course.ID, staff, staff)
		require.NoError(t, tree.Load(ctx))
		section := tree.Sections()[0]

		editor, err := tree.NewModule(section.ID)
		require.NoError(t, err)
		editor.Title = "Cheat sheet"
		require.NoError(t, editor.SetContentType(dto.ContentPDF))
		editor.SelectFile(dto.UploadFile{Name: "sheet.pdf", Content: strings.NewReader("%PDF-1.4\n%fake\n")})
		saved, err := tree.SaveModule(ctx, section.ID, editor)
		require.NoError(t, err)
		assert.Contains(t, saved.ContentURL, "/uploads/documents/")
		assert.Equal(t, authoring.SourceURL, editor.SourceMode())
	})

	t.Run("project round trips through the course", func(t *testing.T) {
		due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		editor := authoring.NewProjectEditor(course.ID, staff, staff)
		editor.Title = "Capstone"
		editor.DueDate = &due
		require.NoError(t, editor.ToggleSubmissionType(dto.SubmissionLink))
		saved, err := editor.Save(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, saved.ID)

		stored, err := staff.GetCourse(ctx, course.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.Project)
		assert.Equal(t, saved.ID, stored.Project.ID)
		assert.Equal(t, "Capstone", stored.Project.Title)

		require.NoError(t, editor.Delete(ctx, authoring.Confirmed))
		stored, err = staff.GetCourse(ctx, course.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Project)
	})

	t.Run("assignment is submitted and graded", func(t *testing.T) {
		due := time.Now().Add(48 * time.Hour)
		editor := authoring.NewAssignmentEditor(course.ID, staff, staff)
		editor.Title = "Homework"
		editor.DueDate = &due
		editor.MaxPoints = 20
		require.NoError(t, editor.ToggleSubmissionType(dto.SubmissionText))
		assignment, err := editor.Save(ctx)
		require.NoError(t, err)

		_, err = learner.Submit(ctx, assignment.ID, dto.Submission{SubmissionType: dto.SubmissionText, Text: "done"})
		require.NoError(t, err)

		grader := authoring.NewGrader(*assignment, staff)
		queue, err := grader.Queue(ctx)
		require.NoError(t, err)
		require.Len(t, queue, 1)

		_, err = grader.Grade(ctx, queue[0].ID, 25, "")
		require.Error(t, err)

		graded, err := grader.Grade(ctx, queue[0].ID, 17, " nice ")
		require.NoError(t, err)
		require.NotNil(t, graded.Grade)
		assert.Equal(t, 17.0, *graded.Grade)
		assert.Equal(t, "nice", graded.Feedback)
	})

	t.Run("project is submitted and graded", func(t *testing.T) {
		due := time.Now().Add(7 * 24 * time.Hour)
		editor := authoring.NewProjectEditor(course.ID, staff, staff)
		editor.Title = "Capstone"
		editor.DueDate = &due
		editor.MaxPoints = 10
		require.NoError(t, editor.ToggleSubmissionType(dto.SubmissionLink))
		project, err := editor.Save(ctx)
		require.NoError(t, err)
		assert.Equal(t, course.ID, project.CourseID)

		submitted, err := learner.SubmitProject(ctx, course.ID, dto.Submission{SubmissionType: dto.SubmissionLink, Link: "https://github.com/lee/capstone"})
		require.NoError(t, err)
		assert.Equal(t, project.ID, submitted.AssignmentID)

		grader := authoring.NewProjectGrader(*project, staff)
		queue, err := grader.Queue(ctx)
		require.NoError(t, err)
		require.Len(t, queue, 1)

		_, err = grader.Grade(ctx, queue[0].ID, 11, "")
		assert.True(t, authoring.IsValidation(err))

		graded, err := grader.Grade(ctx, queue[0].ID, 9, "solid")
		require.NoError(t, err)
		require.NotNil(t, graded.Grade)
		assert.Equal(t, 9.0, *graded.Grade)
	})

	t.Run("publish queues a notification", func(t *testing.T) {
		publisher := authoring.NewPublisher(staff, zerolog.Nop())
		updated, err := publisher.Publish(ctx, *course, true)
		require.NoError(t, err)
		assert.True(t, updated.IsPublic)

		var queued courseModels.Notification
		require.NoError(t, env.db.Where("title = ?", "New course available").First(&queued).Error)
		assert.True(t, queued.Global)
		assert.Equal(t, "Go Basics is now open for enrollment.", queued.Message)

		result, err := publisher.EnrollAll(ctx, course.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Enrolled)
	})

	t.Run("signed out client cannot write", func(t *testing.T) {
		anonymous := apiclient.New(baseURL, apiclient.StaticToken(""))
		_, err := anonymous.CreateSection(ctx, course.ID, dto.SectionInput{Title: "Week 2"})
		assert.ErrorIs(t, err, apiclient.ErrNoToken)
	})
}
