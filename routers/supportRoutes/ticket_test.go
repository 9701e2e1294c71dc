package supportRoutes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/config"
	"lms/database"
	"lms/dto"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", DBDriver: "sqlite", DBName: ":memory:"}
	db, err := database.Open(config.AppConfig)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	database.Database = database.DbInstance{Db: db}
	require.NoError(t, db.Create(&courseModels.Course{Title: "Go Basics"}).Error)

	app := fiber.New()
	SetupSupportRoutes(app)
	return app
}

func bearer(t *testing.T, id uint, role string) string {
	t.Helper()
	tok, err := middleware.GenerateJWT(id, "tester", role, "", time.Hour)
	require.NoError(t, err)
	return tok
}

func call(t *testing.T, app *fiber.App, method, path, tok string, body interface{}) (int, dto.Envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var env dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateTicketValidation(t *testing.T) {
	app := setup(t)
	learner := bearer(t, 5, models.RoleUser)

	status, env := call(t, app, http.MethodPost, "/support", learner, map[string]string{
		"title":    "<b>",
		"priority": "urgent",
		"courseId": "x",
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	var errs map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &errs))
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "message")
	assert.Contains(t, errs, "priority")
	assert.Contains(t, errs, "courseId")

	status, _ = call(t, app, http.MethodPost, "/support", learner, map[string]string{
		"title": "Video broken", "message": "It does not play", "courseId": "99",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestTicketConversation(t *testing.T) {
	app := setup(t)
	learner := bearer(t, 5, models.RoleUser)
	stranger := bearer(t, 6, models.RoleUser)
	staff := bearer(t, 1, models.RoleInstructor)

	status, env := call(t, app, http.MethodPost, "/support", learner, map[string]string{
		"title": "Video broken", "message": "It does not play", "category": "course", "courseId": "1",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var ticket dto.Ticket
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, dto.TicketOpen, ticket.Status)
	assert.Equal(t, dto.PriorityMedium, ticket.Priority)
	assert.Equal(t, dto.TicketCourse, ticket.Category)
	assert.Equal(t, "1", ticket.CourseID)
	require.Len(t, ticket.Messages, 1)

	status, _ = call(t, app, http.MethodPost, "/support/"+ticket.ID+"/reply", stranger, map[string]string{"message": "me too"})
	assert.Equal(t, http.StatusNotFound, status)

	status, env = call(t, app, http.MethodPost, "/support/"+ticket.ID+"/reply", staff, map[string]string{"message": "Fixed, try again"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, dto.TicketPending, ticket.Status)
	require.Len(t, ticket.Messages, 2)
	assert.Equal(t, "staff", ticket.Messages[1].Sender)

	status, env = call(t, app, http.MethodPost, "/support/"+ticket.ID+"/close", learner, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, dto.TicketClosed, ticket.Status)

	status, _ = call(t, app, http.MethodPost, "/support/"+ticket.ID+"/reply", learner, map[string]string{"message": "thanks"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTicketListsArePagedAndScoped(t *testing.T) {
	app := setup(t)
	learner := bearer(t, 5, models.RoleUser)
	other := bearer(t, 6, models.RoleUser)
	admin := bearer(t, 1, models.RoleAdmin)

	for i, tok := range []string{learner, learner, learner, other} {
		status, _ := call(t, app, http.MethodPost, "/support", tok, map[string]string{
			"title": "Question " + string(rune('A'+i)), "message": "help", "priority": "high",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := call(t, app, http.MethodGet, "/support?limit=2", learner, nil)
	require.Equal(t, http.StatusOK, status)
	var page dto.TicketPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Tickets, 2)
	assert.Equal(t, dto.Pagination{Total: 3, Page: 1, Limit: 2}, page.Pagination)

	status, _ = call(t, app, http.MethodGet, "/support?status=lost", learner, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = call(t, app, http.MethodGet, "/support/admin", learner, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = call(t, app, http.MethodGet, "/support/admin?priority=HIGH", admin, nil)
	require.Equal(t, http.StatusOK, status)
	page = dto.TicketPage{}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(4), page.Pagination.Total)

	status, env = call(t, app, http.MethodGet, "/support/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, status)
	var stats dto.TicketStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, dto.TicketStats{Open: 4}, stats)
}
