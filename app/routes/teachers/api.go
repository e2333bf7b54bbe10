package teachers

import (
	"strings"

	"teacher-substitution/app/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := h.store.ListTeachers(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to fetch teachers", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func (h *Handler) GetTeacherAPI(c *fiber.Ctx) error {
	teacherID := strings.TrimSpace(c.Params("id"))
	if teacherID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Teacher ID is required"})
	}

	teacher, err := h.store.FindTeacher(c.UserContext(), teacherID)
	if err != nil {
		h.logger.Error("Failed to fetch teacher", zap.String("teacher_id", teacherID), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teacher"})
	}
	if teacher == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
	}

	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

// UpdateAttendanceAPI marks a teacher PRESENT, ABSENT, LEAVE or LATE.
func (h *Handler) UpdateAttendanceAPI(c *fiber.Ctx) error {
	teacherID := strings.TrimSpace(c.Params("id"))
	if teacherID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Teacher ID is required"})
	}

	var req models.AttendanceUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	if err := h.validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Status must be one of PRESENT, ABSENT, LEAVE or LATE"})
	}

	status := models.AttendanceStatus(req.Status)
	found, err := h.store.UpdateTeacherAttendance(c.UserContext(), teacherID, status)
	if err != nil {
		h.logger.Error("Failed to update attendance", zap.String("teacher_id", teacherID), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save attendance"})
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
	}

	h.logger.Info("Teacher attendance updated", zap.String("teacher_id", teacherID), zap.String("status", string(status)))
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Attendance saved successfully",
		"teacher_id": teacherID,
		"status":     status,
	})
}
