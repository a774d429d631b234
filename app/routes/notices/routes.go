package notices

import (
	"github.com/Mutiur03/School-sub002/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupNoticeRoutes(app *fiber.App) {
	api := app.Group("/api/notices")

	api.Get("/getNotices", GetNoticesAPI)

	api.Post("/addNotice", auth.AuthMiddleware, auth.AdminOnly, CreateNoticeAPI)
	api.Put("/updateNotice/:id", auth.AuthMiddleware, auth.AdminOnly, UpdateNoticeAPI)
	api.Delete("/deleteNotice/:id", auth.AuthMiddleware, auth.AdminOnly, DeleteNoticeAPI)
}
