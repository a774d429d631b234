package marks

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/Mutiur03/School-sub002/app/services"
	"github.com/gofiber/fiber/v2"
)

// ImportMarks ingests a mark workbook for one exam and year. Each row
// carries roll, class, subject name and the three mark components; rows
// are resolved against the roster and subject catalog, values are clamped
// the same way manual entry clamps them, and unresolvable rows fail the
// whole upload.
func ImportMarks(c *fiber.Ctx, db *sql.DB) error {
	examName := c.FormValue("examName")
	year, _ := strconv.Atoi(c.FormValue("year"))
	if examName == "" || year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "examName and year are required"})
	}

	terminal, err := database.IsTerminalExam(db, examName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check exam type"})
	}
	if terminal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Terminal exams are graded by GPA, use addGPA"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	rows, err := services.ParseWorkbook(file, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	header := rows[0]
	if err := services.ValidateHeader(header, services.MarkColumns); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	index := services.HeaderIndex(header)

	rosters := make(map[int]map[int]*models.Student)
	catalogs := make(map[int]map[string]*models.Subject)

	var entries []models.MarkEntry
	for i, row := range rows[1:] {
		rowNum := i + 2
		roll, err := strconv.Atoi(cell(row, index, "roll"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Row %d: invalid roll", rowNum)})
		}
		class, err := strconv.Atoi(cell(row, index, "class"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Row %d: invalid class", rowNum)})
		}
		subjectName := strings.TrimSpace(cell(row, index, "subject"))
		if subjectName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Row %d: subject is required", rowNum)})
		}

		roster, err := classRoster(db, rosters, class, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		student, ok := roster[roll]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Row %d: no student with roll %d in class %d", rowNum, roll, class)})
		}

		catalog, err := classCatalog(db, catalogs, class, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subjects"})
		}
		subject, ok := catalog[strings.ToLower(subjectName)]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Row %d: unknown subject %q for class %d", rowNum, subjectName, class)})
		}
		if !subject.AppliesTo(student.Department) {
			continue
		}

		entries = append(entries, models.MarkEntry{
			StudentID:      student.ID,
			SubjectID:      subject.ID,
			ExamName:       examName,
			Year:           year,
			CQMarks:        ClampMark(cell(row, index, "cq_marks"), subject.CQMark),
			MCQMarks:       ClampMark(cell(row, index, "mcq_marks"), subject.MCQMark),
			PracticalMarks: ClampMark(cell(row, index, "practical_marks"), subject.PracticalMark),
		})
	}

	if len(entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Workbook has no data rows"})
	}

	if err := database.UpsertMarks(db, entries); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save marks"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Marks imported successfully",
		"count":   len(entries),
	})
}

func cell(row []string, index map[string]int, name string) string {
	idx, ok := index[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func classRoster(db *sql.DB, cache map[int]map[int]*models.Student, class, year int) (map[int]*models.Student, error) {
	if roster, ok := cache[class]; ok {
		return roster, nil
	}
	students, err := database.GetStudentsByClass(db, class, year)
	if err != nil {
		return nil, err
	}
	roster := make(map[int]*models.Student, len(students))
	for _, st := range students {
		roster[st.Roll] = st
	}
	cache[class] = roster
	return roster, nil
}

func classCatalog(db *sql.DB, cache map[int]map[string]*models.Subject, class, year int) (map[string]*models.Subject, error) {
	if catalog, ok := cache[class]; ok {
		return catalog, nil
	}
	subjects, err := database.GetSubjectsByClassAndYear(db, class, year)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]*models.Subject, len(subjects))
	for _, sub := range subjects {
		catalog[strings.ToLower(sub.Name)] = sub
	}
	cache[class] = catalog
	return catalog, nil
}
