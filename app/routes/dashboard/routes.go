package dashboard

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)

	api.Get("/stats", GetStatsAPI)
}
