package substitutes

import (
	"time"

	"teacher-substitution/app/services/substitution"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	resolver *substitution.Resolver
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(resolver *substitution.Resolver, location *time.Location, logger *zap.Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		resolver: resolver,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

func SetupSubstitutesRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api/substitutes")
	api.Get("/:teacherId", h.GetSubstitutesAPI)
}
