package subjects

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSubjectRoutes(app *fiber.App) {
	api := app.Group("/api/subjects", auth.AuthMiddleware)

	api.Get("/getSubjects/:year", GetSubjectsAPI)
	api.Get("/getSubject/:id", GetSubjectAPI)

	api.Post("/addSubject", auth.AdminOnly, CreateSubjectAPI)
	api.Post("/import", auth.AdminOnly, ImportSubjectsAPI)
	api.Put("/updateSubject/:id", auth.AdminOnly, UpdateSubjectAPI)
	api.Delete("/deleteSubject/:id", auth.AdminOnly, DeleteSubjectAPI)
}
