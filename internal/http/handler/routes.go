package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"itemapi/internal/service"
)

// RegisterRoutes attaches health probes and the item routes under /items.
func RegisterRoutes(app *fiber.App, db *sql.DB, itemSvc service.ItemService, log zerolog.Logger) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	items := app.Group("/items")
	items.Post("/", CreateItem(itemSvc, log))
	items.Get("/", ListItems(itemSvc, log))
	items.Get("/:id", GetItem(itemSvc, log))
	items.Put("/:id", UpdateItem(itemSvc, log))
	items.Delete("/:id", DeleteItem(itemSvc, log))
}

// HealthCheck checks DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
