package exams

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupExamRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/exams", auth.AuthMiddleware)

	api.Get("/getExams/:year", func(c *fiber.Ctx) error {
		return GetExamsAPI(c, db)
	})
	api.Get("/examNames", func(c *fiber.Ctx) error {
		return GetExamNamesAPI(c, db)
	})

	api.Post("/addExam", auth.AdminOnly, func(c *fiber.Ctx) error {
		return CreateExamAPI(c, db)
	})
	api.Put("/updateExam/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return UpdateExamAPI(c, db)
	})
	api.Patch("/visibility/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return SetVisibilityAPI(c, db)
	})
	api.Delete("/deleteExam/:id", auth.AdminOnly, func(c *fiber.Ctx) error {
		return DeleteExamAPI(c, db)
	})
}
