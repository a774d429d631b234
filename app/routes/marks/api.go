package marks

import (
	"database/sql"
	"strconv"

	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetClassMarks returns the editable mark matrix for a class, year and
// exam: each student's merged entries for every applicable subject, with
// untouched cells zeroed, alongside the subject catalog for max-mark
// display.
func GetClassMarks(c *fiber.Ctx, db *sql.DB) error {
	class, err := strconv.Atoi(c.Params("class"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class"})
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}
	examName := c.Params("examName")
	if examName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "examName is required"})
	}

	students, err := database.GetStudentsByClass(db, class, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	subjects, err := database.GetSubjectsByClassAndYear(db, class, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	existing, err := database.GetMarksByClassExam(db, class, year, examName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch marks"})
	}

	matrix := BuildSubmission(existing, students, subjects, examName, year)

	byStudent := make(map[int][]models.MarkEntry, len(students))
	for _, entry := range matrix {
		byStudent[entry.StudentID] = append(byStudent[entry.StudentID], entry)
	}

	type studentRow struct {
		Student *models.Student    `json:"student"`
		Marks   []models.MarkEntry `json:"marks"`
	}
	rows := make([]studentRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, studentRow{Student: st, Marks: byStudent[st.ID]})
	}

	return c.JSON(fiber.Map{
		"students": rows,
		"subjects": subjects,
		"examName": examName,
		"year":     year,
	})
}

// AddMarks persists the full merged mark matrix for a class view. Values
// are re-clamped server side against the subject catalog and entries for
// department-mismatched (student, subject) pairs are discarded.
func AddMarks(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		ExamName string `json:"examName"`
		Year     int    `json:"year"`
		Students []struct {
			StudentID int `json:"student_id"`
			Marks     []struct {
				SubjectID      int `json:"subject_id"`
				CQMarks        int `json:"cq_marks"`
				MCQMarks       int `json:"mcq_marks"`
				PracticalMarks int `json:"practical_marks"`
			} `json:"marks"`
		} `json:"students"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if request.ExamName == "" || request.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "examName and year are required"})
	}

	terminal, err := database.IsTerminalExam(db, request.ExamName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check exam type"})
	}
	if terminal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Terminal exams are graded by GPA, use addGPA"})
	}

	var entries []models.MarkEntry
	for _, s := range request.Students {
		student, err := database.GetStudentByID(db, s.StudentID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown student in submission"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch student"})
		}

		for _, m := range s.Marks {
			subject, err := database.GetSubjectByID(db, m.SubjectID)
			if err != nil {
				if err == sql.ErrNoRows {
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown subject in submission"})
				}
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch subject"})
			}

			// Department-scoped subjects never accept entries for
			// students of another department.
			if !subject.AppliesTo(student.Department) {
				continue
			}

			entries = append(entries, models.MarkEntry{
				StudentID:      s.StudentID,
				SubjectID:      m.SubjectID,
				ExamName:       request.ExamName,
				Year:           request.Year,
				CQMarks:        ClampMark(strconv.Itoa(m.CQMarks), subject.CQMark),
				MCQMarks:       ClampMark(strconv.Itoa(m.MCQMarks), subject.MCQMark),
				PracticalMarks: ClampMark(strconv.Itoa(m.PracticalMarks), subject.PracticalMark),
			})
		}
	}

	if err := database.UpsertMarks(db, entries); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save marks"})
	}

	return c.JSON(fiber.Map{
		"message": "Marks saved successfully",
		"count":   len(entries),
	})
}

// GetMarksheet projects all of a student's marks for a year into the
// per-exam marksheet. Missing data is an empty sheet, not an error.
func GetMarksheet(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := strconv.Atoi(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	entries, err := database.GetMarksByStudent(db, studentID, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch marks"})
	}

	return c.JSON(BuildMarksheet(entries))
}

// GetGPA lists all terminal-exam GPA entries for a year.
func GetGPA(c *fiber.Ctx, db *sql.DB) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	entries, err := database.GetGPAByYear(db, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch GPA entries"})
	}

	return c.JSON(fiber.Map{
		"gpa":   entries,
		"count": len(entries),
	})
}

// GetGPAList returns the roll-sorted GPA listing for one class and
// terminal exam.
func GetGPAList(c *fiber.Ctx, db *sql.DB) error {
	class, err := strconv.Atoi(c.Params("class"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid class"})
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}
	examName := c.Params("examName")

	entries, err := database.GetGPAByClassExam(db, class, year, examName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch GPA list"})
	}

	return c.JSON(fiber.Map{
		"gpa":      entries,
		"count":    len(entries),
		"examName": examName,
	})
}

// AddGPA persists terminal-exam GPA submissions, clamped to the 5.00
// ceiling with two-decimal truncation.
func AddGPA(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		ExamName string `json:"examName"`
		Year     int    `json:"year"`
		Students []struct {
			StudentID int    `json:"student_id"`
			GPA       string `json:"gpa"`
		} `json:"students"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if request.ExamName == "" || request.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "examName and year are required"})
	}

	terminal, err := database.IsTerminalExam(db, request.ExamName)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check exam type"})
	}
	if !terminal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "GPA entry applies to terminal exams only"})
	}

	entries := make([]models.GPAEntry, 0, len(request.Students))
	for _, s := range request.Students {
		entries = append(entries, models.GPAEntry{
			StudentID: s.StudentID,
			ExamName:  request.ExamName,
			Year:      request.Year,
			GPA:       ClampGPA(s.GPA),
		})
	}

	if err := database.UpsertGPA(db, entries); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save GPA entries"})
	}

	return c.JSON(fiber.Map{
		"message": "GPA entries saved successfully",
		"count":   len(entries),
	})
}
