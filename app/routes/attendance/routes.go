package attendance

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	// The route spelling matches the dashboard client.
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/getAttendence", GetAttendanceAPI)
	api.Post("/addAttendence", AddAttendanceAPI)
	api.Get("/holidays/:date", GetHolidaysByDateAPI)
}
