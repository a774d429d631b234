package sms

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSMSRoutes(app *fiber.App) {
	api := app.Group("/api/sms", auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/logs", GetSMSLogsAPI)
	api.Get("/summary", GetSMSSummaryAPI)
}
