package staff

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStaffRoutes(app *fiber.App) {
	api := app.Group("/api/staff", auth.AuthMiddleware)

	api.Get("/getStaff", GetStaffAPI)

	api.Post("/addStaff", auth.AdminOnly, CreateStaffAPI)
	api.Put("/updateStaff/:id", auth.AdminOnly, UpdateStaffAPI)
	api.Delete("/deleteStaff/:id", auth.AdminOnly, DeleteStaffAPI)
}
