package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "itemapi/docs"
)

// RegisterDocs serves Swagger UI and doc.json under /swagger. The registered
// document is read-only at request time; host and schemes stay empty so the UI
// targets whichever origin served the page.
func RegisterDocs(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
