package sms

import (
	"time"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/gofiber/fiber/v2"
)

// GetSMSLogsAPI pages through the notification log, newest first.
func GetSMSLogsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	logs, err := database.GetSMSLogs(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch SMS logs"})
	}

	return c.JSON(fiber.Map{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}

// GetSMSSummaryAPI reports sent/failed counts for one day.
func GetSMSSummaryAPI(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
		}
		date = parsed
	}

	sent, failed, err := database.GetSMSCountsByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch SMS summary"})
	}

	return c.JSON(fiber.Map{
		"date":   date.Format("2006-01-02"),
		"sent":   sent,
		"failed": failed,
	})
}
