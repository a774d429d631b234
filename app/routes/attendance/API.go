package attendance

import (
	"time"

	"github.com/Mutiur03/School-sub002/app/config"
	"github.com/Mutiur03/School-sub002/app/database"
	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/Mutiur03/School-sub002/app/services"
	"github.com/gofiber/fiber/v2"
)

// GetAttendanceAPI returns the monthly attendance grid for a class: the
// roster, every stored (student, day) status, and the initial day window.
// Cells with no stored row are unset and render blank until saved.
func GetAttendanceAPI(c *fiber.Ctx) error {
	class := c.QueryInt("class")
	year := c.QueryInt("year")
	month := c.QueryInt("month", int(time.Now().Month()))
	calendarYear := c.QueryInt("calendarYear", time.Now().Year())

	if class == 0 || year == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "class and year are required"})
	}
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid month"})
	}

	db := config.GetDB()

	students, err := database.GetStudentsByClass(db, class, year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	grid, err := database.GetAttendanceByMonth(db, class, year, month, calendarYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	window := NewDayWindow(month, calendarYear, time.Now())

	return c.JSON(fiber.Map{
		"students":      students,
		"attendance":    grid,
		"month":         month,
		"calendar_year": calendarYear,
		"visible_days":  window.VisibleDays(),
		"editable_days": window.EditableDays(),
		"is_current":    window.IsCurrentMonth(),
		"count":         len(students),
	})
}

// AddAttendanceAPI persists a day-window save. The batch is expanded
// server side: one record per (student, editable day), cells the admin
// never touched recorded absent. Absence notifications for today are
// logged and their counts returned with the save summary.
func AddAttendanceAPI(c *fiber.Ctx) error {
	type markedCell struct {
		StudentID int                     `json:"student_id"`
		Day       int                     `json:"day"`
		Status    models.AttendanceStatus `json:"status"`
	}
	var req struct {
		Class        int          `json:"class"`
		Year         int          `json:"year"`
		Month        int          `json:"month"`
		CalendarYear int          `json:"calendarYear"`
		EditableDays []int        `json:"editableDays"`
		Records      []markedCell `json:"records"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Class == 0 || req.Year == 0 || req.Month < 1 || req.Month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "class, year and month are required"})
	}

	for _, r := range req.Records {
		if r.Status != models.Present && r.Status != models.Absent {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be present or absent"})
		}
	}

	db := config.GetDB()

	students, err := database.GetStudentsByClass(db, req.Class, req.Year)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	if len(students) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No students in selected class"})
	}

	now := time.Now()
	window := NewDayWindow(req.Month, req.CalendarYear, now)
	for _, d := range req.EditableDays {
		if !window.IsEditable(d) {
			window.ToggleEditable(d)
		}
	}

	marked := make(map[int]map[int]models.AttendanceStatus)
	for _, r := range req.Records {
		if marked[r.StudentID] == nil {
			marked[r.StudentID] = make(map[int]models.AttendanceStatus)
		}
		marked[r.StudentID][r.Day] = r.Status
	}

	studentIDs := make([]int, 0, len(students))
	byID := make(map[int]*models.Student, len(students))
	for _, st := range students {
		studentIDs = append(studentIDs, st.ID)
		byID[st.ID] = st
	}

	batch := BuildSaveBatch(window, studentIDs, marked)
	if len(batch) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No editable days selected"})
	}

	present, absent, err := database.UpsertAttendanceBatch(db, batch)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance records"})
	}

	// Notify guardians of today's absentees only; backfilled days do not
	// re-send.
	today := now.Format("2006-01-02")
	var absentees []*models.Student
	for _, rec := range batch {
		if rec.Status == models.Absent && rec.Date == today {
			if st, ok := byID[rec.StudentID]; ok {
				absentees = append(absentees, st)
			}
		}
	}
	sent, failed := services.NotifyAbsentees(db, absentees, today)

	return c.JSON(fiber.Map{
		"message": "Attendance saved successfully",
		"summary": models.AttendanceSummary{
			Present:   present,
			Absent:    absent,
			SMSSent:   sent,
			SMSFailed: failed,
		},
	})
}

// GetHolidaysByDateAPI reports the holiday ranges covering a date so the
// grid can badge holiday columns.
func GetHolidaysByDateAPI(c *fiber.Ctx) error {
	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	holidays, err := database.GetHolidaysByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch holidays"})
	}

	return c.JSON(fiber.Map{
		"holidays": holidays,
		"count":    len(holidays),
		"date":     date,
	})
}
