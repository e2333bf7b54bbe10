package timetable

import (
	"context"

	"teacher-substitution/app/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TimetableStore exposes the inspection query behind the timetable API.
type TimetableStore interface {
	TeacherTimetable(ctx context.Context, teacherID, day string) ([]models.TimetableEntry, error)
}

type Handler struct {
	store  TimetableStore
	logger *zap.Logger
}

func NewHandler(store TimetableStore, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func SetupTimetableRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/timetable")
	api.Get("/:teacherId", h.GetTeacherTimetableAPI)
}
