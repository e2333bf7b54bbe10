package teachers

import (
	"context"

	"teacher-substitution/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TeacherStore is the part of the database store the teacher API uses.
type TeacherStore interface {
	ListTeachers(ctx context.Context) ([]*models.Teacher, error)
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	UpdateTeacherAttendance(ctx context.Context, id string, status models.AttendanceStatus) (bool, error)
}

type Handler struct {
	store    TeacherStore
	validate *validator.Validate
	logger   *zap.Logger
}

func NewHandler(store TeacherStore, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

func SetupTeachersRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/teachers")
	api.Get("/", h.GetTeachersAPI)
	api.Get("/:id", h.GetTeacherAPI)
	api.Put("/:id/attendance", h.UpdateAttendanceAPI)
}
