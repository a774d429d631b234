package holidays

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupHolidayRoutes(app *fiber.App) {
	api := app.Group("/api/holidays", auth.AuthMiddleware)

	api.Get("/getHolidays", GetHolidaysAPI)

	api.Post("/addHoliday", auth.AdminOnly, CreateHolidayAPI)
	api.Put("/updateHoliday/:id", auth.AdminOnly, UpdateHolidayAPI)
	api.Delete("/deleteHoliday/:id", auth.AdminOnly, DeleteHolidayAPI)
}
