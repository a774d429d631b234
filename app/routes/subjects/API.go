package subjects

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/Mutiur03/School-sub002/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetSubjectsAPI(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid year"})
	}

	var subjects []*models.Subject
	if class := c.QueryInt("class"); class > 0 {
		subjects, err = database.GetSubjectsByClassAndYear(config.GetDB(), class, year)
	} else {
		subjects, err = database.GetSubjectsByYear(config.GetDB(), year)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{"subjects": subjects})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	subject, err := database.GetSubjectByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	return c.JSON(fiber.Map{"subject": subject})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(&subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateSubject(config.GetDB(), &subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subject created successfully",
		"subject": subject,
	})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	var subject models.Subject
	if err := c.BodyParser(&subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	subject.ID = id

	if err := validate.Struct(&subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateSubject(config.GetDB(), &subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}

	return c.JSON(fiber.Map{"message": "Subject updated successfully"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid subject ID"})
	}

	if err := database.DeleteSubject(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}

	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

// ImportSubjectsAPI ingests a subject-list workbook for a year.
func ImportSubjectsAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	rows, err := services.ParseWorkbook(file, fileHeader.Filename)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	header := rows[0]
	if err := services.ValidateHeader(header, services.SubjectColumns); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subjects := services.NormalizeSubjectRows(header, rows[1:])
	if len(subjects) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Workbook has no data rows"})
	}

	batch := make([]*models.Subject, 0, len(subjects))
	var rowErrors []fiber.Map
	for i := range subjects {
		if missing := services.ValidateSubjectRecord(subjects[i]); len(missing) > 0 {
			rowErrors = append(rowErrors, fiber.Map{
				"row":     i + 2,
				"missing": missing,
			})
			continue
		}
		batch = append(batch, &subjects[i])
	}

	if len(rowErrors) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("%d row(s) failed validation", len(rowErrors)),
			"rows":  rowErrors,
		})
	}

	if err := database.CreateSubjectsBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import subjects"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subjects imported successfully",
		"count":   len(batch),
	})
}
