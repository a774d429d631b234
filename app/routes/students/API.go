package students

import (
	"database/sql"
	"strconv"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	students, err := database.GetStudentsByYear(config.GetDB(), year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentsByClassAPI(c *fiber.Ctx) error {
	class := c.QueryInt("class")
	year := c.QueryInt("year")
	if class == 0 || year == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "class and year are required"})
	}

	students, err := database.GetStudentsByClass(config.GetDB(), class, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

// CreateStudentAPI handles the single-entry admission form. Department is
// required from class 9 up.
func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if student.Class >= 9 && (student.Department == nil || *student.Department == "") {
		return c.Status(400).JSON(fiber.Map{"error": "Department is required for class 9 and above"})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

// AddStudentsAPI accepts a pre-normalized bulk payload from the dashboard
// and inserts it atomically.
func AddStudentsAPI(c *fiber.Ctx) error {
	var req struct {
		Students []models.Student `json:"students"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Students) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No students provided"})
	}

	batch := make([]*models.Student, 0, len(req.Students))
	for i := range req.Students {
		if err := validate.Struct(&req.Students[i]); err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error":   "Validation failed",
				"row":     i + 1,
				"details": err.Error(),
			})
		}
		batch = append(batch, &req.Students[i])
	}

	if err := database.CreateStudentsBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save students"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Students saved successfully",
		"count":   len(batch),
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = id

	if err := validate.Struct(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// UpdateStudentStatusAPI records promotion decisions at year end.
func UpdateStudentStatusAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var req struct {
		Status models.StudentStatus `json:"status" validate:"required,oneof=enrolled promoted retained graduated"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	if err := database.UpdateStudentStatus(config.GetDB(), id, req.Status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update status"})
	}

	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

// DeleteStudentAPI hides a student instead of deleting: marks and
// attendance history must survive.
func DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	if err := database.HideStudent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student removed successfully"})
}
