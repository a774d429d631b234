package staff

import (
	"strconv"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStaffAPI(c *fiber.Ctx) error {
	staffs, err := database.GetAllStaffs(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch staff"})
	}

	return c.JSON(fiber.Map{
		"staffs": staffs,
		"count":  len(staffs),
	})
}

func CreateStaffAPI(c *fiber.Ctx) error {
	var s models.Staff
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateStaff(config.GetDB(), &s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Staff created successfully",
		"staff":   s,
	})
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	var s models.Staff
	if err := c.BodyParser(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	s.ID = id
	if err := validate.Struct(&s); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStaff(config.GetDB(), &s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff"})
	}

	return c.JSON(fiber.Map{"message": "Staff updated successfully"})
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	if err := database.DeleteStaff(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete staff"})
	}

	return c.JSON(fiber.Map{"message": "Staff removed successfully"})
}
