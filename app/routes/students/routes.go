package students

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students", auth.AuthMiddleware)

	api.Get("/getStudents/:year", GetStudentsAPI)
	api.Get("/getStudentsByClass", GetStudentsByClassAPI)
	api.Get("/getStudent/:id", GetStudentByIDAPI)
	api.Get("/export", ExportStudentsAPI)

	api.Post("/addStudent", auth.AdminOnly, CreateStudentAPI)
	api.Post("/addStudents", auth.AdminOnly, AddStudentsAPI)
	api.Post("/import", auth.AdminOnly, ImportStudentsAPI)
	api.Put("/updateStudent/:id", auth.AdminOnly, UpdateStudentAPI)
	api.Patch("/updateStatus/:id", auth.AdminOnly, UpdateStudentStatusAPI)
	api.Delete("/deleteStudent/:id", auth.AdminOnly, DeleteStudentAPI)
}
