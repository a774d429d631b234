package holidays

import (
	"strconv"
	"time"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetHolidaysAPI(c *fiber.Ctx) error {
	holidays, err := database.GetHolidays(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}

	return c.JSON(fiber.Map{"holidays": holidays})
}

func CreateHolidayAPI(c *fiber.Ctx) error {
	var h models.Holiday
	if err := c.BodyParser(&h); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&h); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := checkRange(h.StartDate, h.EndDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateHoliday(config.GetDB(), &h); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create holiday"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Holiday created successfully",
		"holiday": h,
	})
}

func UpdateHolidayAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid holiday ID"})
	}

	var h models.Holiday
	if err := c.BodyParser(&h); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	h.ID = id
	if err := validate.Struct(&h); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := checkRange(h.StartDate, h.EndDate); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateHoliday(config.GetDB(), &h); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update holiday"})
	}

	return c.JSON(fiber.Map{"message": "Holiday updated successfully"})
}

func DeleteHolidayAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid holiday ID"})
	}

	if err := database.DeleteHoliday(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete holiday"})
	}

	return c.JSON(fiber.Map{"message": "Holiday deleted successfully"})
}

func checkRange(start, end string) error {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}
	if e.Before(s) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")
	}
	return nil
}
