package events

import (
	"strconv"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch events"})
	}

	return c.JSON(fiber.Map{"events": events})
}

func CreateEventAPI(c *fiber.Ctx) error {
	var e models.Event
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateEvent(config.GetDB(), &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Event created successfully",
		"event":   e,
	})
}

func UpdateEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	var e models.Event
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	e.ID = id
	if err := validate.Struct(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateEvent(config.GetDB(), &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update event"})
	}

	return c.JSON(fiber.Map{"message": "Event updated successfully"})
}

func DeleteEventAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	if err := database.DeleteEvent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete event"})
	}

	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}
