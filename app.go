package main

import (
	"errors"
	"time"

	"teacher-substitution/app/database"
	"teacher-substitution/app/routes/substitutes"
	"teacher-substitution/app/routes/teachers"
	"teacher-substitution/app/routes/timetable"
	"teacher-substitution/app/services/substitution"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// customErrorHandler renders every unhandled error as JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

// newApp wires middleware and routes onto a fresh fiber app.
func newApp(store *database.Store, resolver *substitution.Resolver, loc *time.Location, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		UnescapePath: true,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unavailable")
		}
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Routes
	substitutes.SetupSubstitutesRoutes(app, substitutes.NewHandler(resolver, loc, logger))
	teachers.SetupTeachersRoutes(app, teachers.NewHandler(store, logger))
	timetable.SetupTimetableRoutes(app, timetable.NewHandler(store, logger))

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	return app
}
