package substitutes

import (
	"errors"
	"strings"

	"teacher-substitution/app/services/substitution"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetSubstitutesAPI returns the coverage report for an absent teacher. When
// no day is given, today's weekday in the school's time zone is used.
func (h *Handler) GetSubstitutesAPI(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")
	day := c.Query("day")
	if strings.TrimSpace(day) == "" {
		day = h.now().In(h.location).Weekday().String()
	}

	report, err := h.resolver.Resolve(c.UserContext(), teacherID, day)
	if errors.Is(err, substitution.ErrInvalidInput) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if err != nil {
		h.logger.Error("Failed to resolve substitutes",
			zap.String("teacher_id", teacherID),
			zap.String("day", day),
			zap.String("request_id", requestID(c)),
			zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to resolve substitutes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
