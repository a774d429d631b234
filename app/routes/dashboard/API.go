package dashboard

import (
	"time"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/gofiber/fiber/v2"
)

func GetStatsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	stats, err := database.GetDashboardStats(config.GetDB(), year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{"stats": stats, "year": year})
}
