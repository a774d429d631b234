package students

import (
	"fmt"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/Mutiur03/School-sub002/app/services"
	"github.com/gofiber/fiber/v2"
)

// ImportStudentsAPI ingests an admission-list workbook. The whole upload
// is rejected when required columns are missing from the header, and no
// rows are written unless every row passes required-field validation.
func ImportStudentsAPI(c *fiber.Ctx) error {
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
	if err := services.ValidateHeader(header, services.StudentColumns); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	records := services.NormalizeStudentRows(header, rows[1:])
	if len(records) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Workbook has no data rows"})
	}

	batch := make([]*models.Student, 0, len(records))
	var rowErrors []fiber.Map
	for i, rec := range records {
		if missing := services.ValidateStudentRecord(rec); len(missing) > 0 {
			rowErrors = append(rowErrors, fiber.Map{
				"row":     i + 2,
				"missing": missing,
			})
			continue
		}
		batch = append(batch, studentFromRecord(rec))
	}

	if len(rowErrors) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("%d row(s) failed validation", len(rowErrors)),
			"rows":  rowErrors,
		})
	}

	if err := database.CreateStudentsBatch(config.GetDB(), batch); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to import students"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Students imported successfully",
		"count":   len(batch),
	})
}

func studentFromRecord(rec models.StudentRecord) *models.Student {
	s := &models.Student{
		Name:       *rec.Name,
		Roll:       *rec.Roll,
		Class:      *rec.Class,
		Year:       *rec.Year,
		Department: rec.Department,
		Phone:      rec.Phone,
		FatherName: rec.FatherName,
		MotherName: rec.MotherName,
		DOB:        rec.DOB,
		Gender:     rec.Gender,
		Address:    rec.Address,
		HasStipend: rec.HasStipend,
		Status:     models.Enrolled,
		Available:  true,
	}
	if rec.Section != nil {
		s.Section = *rec.Section
	}
	return s
}

// ExportStudentsAPI streams the admission list for a year as an .xlsx
// attachment.
func ExportStudentsAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	if year == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "year is required"})
	}

	students, err := database.GetStudentsByYear(config.GetDB(), year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	f, err := services.BuildAdmissionListWorkbook(students)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	filename := services.ExportFilename("admission_list", year)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return f.Write(c.Response().BodyWriter())
}
