package timetable

import (
	"strings"

	"teacher-substitution/app/models"
	"teacher-substitution/app/services/substitution"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetTeacherTimetableAPI lists a teacher's entries, free and busy. The
// optional day query narrows it to one day.
func (h *Handler) GetTeacherTimetableAPI(c *fiber.Ctx) error {
	teacherID := strings.TrimSpace(c.Params("teacherId"))
	if teacherID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Teacher ID is required"})
	}
	day := substitution.NormalizeDay(c.Query("day"))

	entries, err := h.store.TeacherTimetable(c.UserContext(), teacherID, day)
	if err != nil {
		h.logger.Error("Failed to fetch timetable", zap.String("teacher_id", teacherID), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch timetable"})
	}
	if entries == nil {
		entries = []models.TimetableEntry{}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"teacher_id": teacherID,
		"day":        day,
		"entries":    entries,
		"count":      len(entries),
	})
}
