package exams

import (
	"database/sql"
	"strconv"

	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	exams, err := database.GetExamsByYear(db, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{"exams": exams})
}

func CreateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var exam models.Exam
	if err := c.BodyParser(&exam); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&exam); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := checkExamName(db, exam.ExamName); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateExam(db, &exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Exam created successfully",
		"exam":    exam,
	})
}

func UpdateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exam ID"})
	}

	var exam models.Exam
	if err := c.BodyParser(&exam); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	exam.ID = id

	if err := validate.Struct(&exam); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := checkExamName(db, exam.ExamName); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateExam(db, &exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
	}

	return c.JSON(fiber.Map{"message": "Exam updated successfully"})
}

// SetVisibilityAPI publishes or hides an exam's results without touching
// the stored marks.
func SetVisibilityAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exam ID"})
	}

	var req struct {
		Visible bool `json:"visible"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.SetExamVisibility(db, id, req.Visible); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update visibility"})
	}

	return c.JSON(fiber.Map{"message": "Visibility updated", "visible": req.Visible})
}

func DeleteExamAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exam ID"})
	}

	if err := database.DeleteExam(db, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exam"})
	}

	return c.JSON(fiber.Map{"message": "Exam deleted successfully"})
}

func GetExamNamesAPI(c *fiber.Ctx, db *sql.DB) error {
	names, err := database.GetExamNames(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam names"})
	}

	return c.JSON(fiber.Map{"exam_names": names})
}

// checkExamName rejects names outside the configured set so exams, marks
// and GPA entries stay joinable on the name.
func checkExamName(db *sql.DB, name string) error {
	names, err := database.GetExamNames(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch exam names")
	}
	for _, n := range names {
		if n.Name == name {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusBadRequest, "Unknown exam name: "+name)
}
