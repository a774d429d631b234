package notices

import (
	"strconv"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetNoticesAPI(c *fiber.Ctx) error {
	notices, err := database.GetNotices(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notices"})
	}

	return c.JSON(fiber.Map{"notices": notices})
}

func CreateNoticeAPI(c *fiber.Ctx) error {
	var n models.Notice
	if err := c.BodyParser(&n); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&n); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateNotice(config.GetDB(), &n); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create notice"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Notice created successfully",
		"notice":  n,
	})
}

func UpdateNoticeAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid notice ID"})
	}

	var n models.Notice
	if err := c.BodyParser(&n); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	n.ID = id
	if err := validate.Struct(&n); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateNotice(config.GetDB(), &n); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update notice"})
	}

	return c.JSON(fiber.Map{"message": "Notice updated successfully"})
}

func DeleteNoticeAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid notice ID"})
	}

	if err := database.DeleteNotice(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete notice"})
	}

	return c.JSON(fiber.Map{"message": "Notice deleted successfully"})
}
