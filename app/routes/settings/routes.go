package settings

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings", auth.AuthMiddleware)

	api.Get("/academicYear", GetAcademicYearAPI)
	api.Put("/academicYear", auth.AdminOnly, SetAcademicYearAPI)
}
