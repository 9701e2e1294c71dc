package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/config"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
)

type recordingMailer struct {
	sent []Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{DBDriver: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, db *gorm.DB) courseModels.Course {
	t.Helper()
	users := []models.User{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Linus", Email: "linus@example.com"},
		{Name: "Grace", Email: "grace@example.com", IsBlocked: true},
	}
	require.NoError(t, db.Create(&users).Error)
	course := courseModels.Course{Title: "Go Basics"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: users[0].ID, CourseID: course.ID}).Error)
	return course
}

func TestDispatcherSendsPendingNotifications(t *testing.T) {
	db := openTestDB(t)
	course := seed(t, db)
	require.NoError(t, db.Create(&[]courseModels.Notification{
		{Title: "Welcome", Message: "hello all", Global: true},
		{Title: "Week 1 is live", Message: "start now", Link: "/courses/1", CourseID: &course.ID},
	}).Error)

	mailer := &recordingMailer{}
	d := NewDispatcher(db, mailer, zerolog.Nop(), "LMS", "https://lms.example.com")

	sent, err := d.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, mailer.sent, 2)

	assert.Len(t, mailer.sent[0].To, 2, "blocked users are skipped")
	assert.Equal(t, []Recipient{{Name: "Ada", Email: "ada@example.com"}}, mailer.sent[1].To)
	assert.True(t, strings.Contains(mailer.sent[1].Text, "https://lms.example.com/courses/1"))
	assert.Contains(t, mailer.sent[1].HTML, "Week 1 is live")

	// nothing left to send
	sent, err = d.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestDispatcherRecordsFailures(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)
	require.NoError(t, db.Create(&courseModels.Notification{Title: "Welcome", Global: true}).Error)

	d := NewDispatcher(db, &recordingMailer{err: errors.New("quota exceeded")}, zerolog.Nop(), "LMS", "")
	for i := 0; i < maxAttempts+2; i++ {
		sent, err := d.RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	}

	var n courseModels.Notification
	require.NoError(t, db.First(&n).Error)
	assert.Nil(t, n.SentAt)
	assert.Equal(t, maxAttempts, n.Attempts)
	assert.Equal(t, "quota exceeded", n.LastError)
}

func TestSendgridMessagePersonalizesEachRecipient(t *testing.T) {
	m := NewSendgridMailer("key", "LMS", "noreply@example.com")
	v3 := m.prepare(Message{
		To:      []Recipient{{Email: "a@example.com"}, {Email: "b@example.com"}},
		Subject: "Hi",
		Text:    "text",
		HTML:    "<p>html</p>",
	})
	require.Len(t, v3.Personalizations, 2)
	assert.Equal(t, "[LMS] Hi", v3.Personalizations[0].Subject)
	assert.Equal(t, "b@example.com", v3.Personalizations[1].To[0].Address)
	assert.Len(t, v3.Content, 2)
}

func TestNewMailerFallsBackToLog(t *testing.T) {
	assert.IsType(t, &LogMailer{}, NewMailer(&config.Config{}, zerolog.Nop()))
	assert.IsType(t, &SendgridMailer{}, NewMailer(&config.Config{SendgridAPIKey: "k"}, zerolog.Nop()))
}
