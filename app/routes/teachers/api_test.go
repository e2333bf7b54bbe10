package teachers

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"teacher-substitution/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	teachers map[string]*models.Teacher
	err      error
}

func (m *memStore) ListTeachers(context.Context) ([]*models.Teacher, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) FindTeacher(_ context.Context, id string) (*models.Teacher, error) {
	return m.teachers[strings.ToUpper(id)], m.err
}

func (m *memStore) UpdateTeacherAttendance(_ context.Context, id string, status models.AttendanceStatus) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	t, ok := m.teachers[strings.ToUpper(id)]
	if !ok {
		return false, nil
	}
	t.Status = string(status)
	return true, nil
}

func newTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	SetupTeachersRoutes(app, NewHandler(store, zap.NewNop()))
	return app
}

func put(t *testing.T, app *fiber.App, target, body string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestUpdateAttendanceAPI(t *testing.T) {
	store := &memStore{teachers: map[string]*models.Teacher{
		"T01": {ID: "T01", Name: "Alice", Status: "PRESENT"},
	}}
	app := newTestApp(store)

	assert.Equal(t, 200, put(t, app, "/api/teachers/t01/attendance", `{"status":"absent"}`))
	assert.Equal(t, "ABSENT", store.teachers["T01"].Status)

	assert.Equal(t, 400, put(t, app, "/api/teachers/T01/attendance", `{"status":"sick"}`))
	assert.Equal(t, 400, put(t, app, "/api/teachers/T01/attendance", `{}`))
	assert.Equal(t, 400, put(t, app, "/api/teachers/T01/attendance", `not json`))
	assert.Equal(t, 404, put(t, app, "/api/teachers/T99/attendance", `{"status":"PRESENT"}`))
	assert.Equal(t, "ABSENT", store.teachers["T01"].Status)
}

func TestUpdateAttendanceAPI_StoreError(t *testing.T) {
	app := newTestApp(&memStore{err: errors.New("db down")})
	assert.Equal(t, 500, put(t, app, "/api/teachers/T01/attendance", `{"status":"PRESENT"}`))
}

func TestGetTeacherAPI(t *testing.T) {
	app := newTestApp(&memStore{teachers: map[string]*models.Teacher{
		"T01": {ID: "T01", Name: "Alice", Status: "PRESENT"},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/teachers/T01", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/teachers/T02", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/teachers/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
