package events

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App) {
	api := app.Group("/api/events")

	api.Get("/getEvents", GetEventsAPI)

	api.Post("/addEvent", auth.AuthMiddleware, auth.AdminOnly, CreateEventAPI)
	api.Put("/updateEvent/:id", auth.AuthMiddleware, auth.AdminOnly, UpdateEventAPI)
	api.Delete("/deleteEvent/:id", auth.AuthMiddleware, auth.AdminOnly, DeleteEventAPI)
}
