package marks

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

// SetupMarksRoutes sets up all mark and GPA routes
func SetupMarksRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/marks")
	api.Use(auth.AuthMiddleware)

	api.Get("/getClassMarks/:class/:year/:examName", func(c *fiber.Ctx) error { return GetClassMarks(c, db) })
	api.Post("/addMarks", func(c *fiber.Ctx) error { return AddMarks(c, db) })
	api.Get("/marksheet/:studentId/:year", func(c *fiber.Ctx) error { return GetMarksheet(c, db) })
	api.Get("/getGPA/:year", func(c *fiber.Ctx) error { return GetGPA(c, db) })
	api.Get("/gpaList/:class/:year/:examName", func(c *fiber.Ctx) error { return GetGPAList(c, db) })
	api.Post("/addGPA", func(c *fiber.Ctx) error { return AddGPA(c, db) })
	api.Post("/import", auth.AdminOnly, func(c *fiber.Ctx) error { return ImportMarks(c, db) })
}
