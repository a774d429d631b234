package settings

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/gofiber/fiber/v2"
)

const academicYearKey = "academic_year"

// GetAcademicYearAPI returns the configured working year; it falls back to
// the calendar year when nothing has been set.
func GetAcademicYearAPI(c *fiber.Ctx) error {
	value, err := database.GetSetting(config.GetDB(), academicYearKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(fiber.Map{"academic_year": time.Now().Year(), "default": true})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academic year"})
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Stored academic year is invalid"})
	}

	return c.JSON(fiber.Map{"academic_year": year})
}

func SetAcademicYearAPI(c *fiber.Ctx) error {
	var req struct {
		Year int `json:"year"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Year < 2000 || req.Year > 2100 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	if err := database.SetSetting(config.GetDB(), academicYearKey, strconv.Itoa(req.Year)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save academic year"})
	}

	return c.JSON(fiber.Map{"message": "Academic year updated", "academic_year": req.Year})
}
