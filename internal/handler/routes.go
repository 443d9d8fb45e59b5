package handler

import (
	"github.com/gofiber/fiber/v2"

	"gondola-rental/internal/middleware"
	"gondola-rental/internal/service/auth"
)

func SetupRoutes(app *fiber.App, h *Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1", middleware.AuthRequired(authService))

	runs := v1.Group("/runs")
	runs.Post("/:job", middleware.RequireRole(auth.RoleAdmin), h.Run.Trigger)
	runs.Get("/:job/latest", h.Run.Latest)

	v1.Get("/dashboard", h.Dashboard.GetStats)
	v1.Get("/gondolas/:gondolaId/certificates", h.Gondola.Certificates)

	selfOrAdmin := middleware.RequireSelfOrAdmin("userId")
	v1.Get("/users/:userId/preferences", selfOrAdmin, h.Notification.Preferences)
	v1.Get("/users/:userId/notification-logs", selfOrAdmin, h.Notification.Logs)
}
