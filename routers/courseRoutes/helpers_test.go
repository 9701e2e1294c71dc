package courseRoutes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/config"
	controllers "lms/controllers/course"
	"lms/database"
	"lms/dto"
	"lms/middleware"
	"lms/models"
	"lms/storage"
)

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	staff   string
	admin   string
	learner string

	learnerID uint
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: "test-secret", DBDriver: "sqlite", DBName: ":memory:"}

	db, err := database.Open(config.AppConfig)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	database.Database = database.DbInstance{Db: db}
	controllers.Storage = storage.NewLocalStore(t.TempDir(), "http://localhost:3000")

	instructor := models.User{Name: "Ines", Email: "ines@example.com", Role: models.RoleInstructor}
	learner := models.User{Name: "Lee", Email: "lee@example.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&instructor).Error)
	require.NoError(t, db.Create(&learner).Error)

	app := fiber.New()
	SetupCourseRoutes(app)

	return &testEnv{
		app:       app,
		db:        db,
		staff:     token(t, instructor.ID, models.RoleInstructor),
		admin:     token(t, 99, models.RoleAdmin),
		learner:   token(t, learner.ID, models.RoleUser),
		learnerID: learner.ID,
	}
}

func token(t *testing.T, id uint, role string) string {
	t.Helper()
	tok, err := middleware.GenerateJWT(id, "tester", role, "tester@example.com", time.Hour)
	require.NoError(t, err)
	return tok
}

// call sends body as JSON (when non-nil) and decodes the response envelope.
func (e *testEnv) call(t *testing.T, method, path, tok string, body interface{}) (int, dto.Envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(t, req, tok)
}

func (e *testEnv) send(t *testing.T, req *http.Request, tok string) (int, dto.Envelope) {
	t.Helper()
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env dto.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env dto.Envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// createCourse stores a valid course through the API and returns its id.
func (e *testEnv) createCourse(t *testing.T, title string) string {
	t.Helper()
	status, env := e.call(t, http.MethodPost, "/courses", e.staff, map[string]interface{}{
		"title":      title,
		"category":   "development",
		"level":      "beginner",
		"instructor": map[string]string{"name": "Ines"},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var course dto.Course
	decodeData(t, env, &course)
	return course.ID
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
