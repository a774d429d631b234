package teachers

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(app *fiber.App) {
	api := app.Group("/api/teachers", auth.AuthMiddleware)

	api.Get("/getTeachers", GetTeachersAPI)
	api.Get("/mySubjects", MySubjectsAPI)

	api.Post("/addTeacher", auth.AdminOnly, CreateTeacherAPI)
	api.Put("/updateTeacher/:id", auth.AdminOnly, UpdateTeacherAPI)
	api.Delete("/deleteTeacher/:id", auth.AdminOnly, DeleteTeacherAPI)
}
