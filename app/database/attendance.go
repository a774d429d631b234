package database

import (
	"database/sql"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
)

// GetAttendanceByMonth returns all attendance rows for a class in a month,
// keyed by student id then day-of-month. Missing cells are unset, not
// absent; the display layer renders them blank until saved.
func GetAttendanceByMonth(db *sql.DB, class, year, month, calendarYear int) (map[int]map[int]models.AttendanceStatus, error) {
	query := `
		SELECT a.student_id, EXTRACT(DAY FROM a.date)::int, a.status
		FROM attendance a
		JOIN students st ON st.id = a.student_id
		WHERE st.class = $1 AND st.year = $2
		  AND EXTRACT(MONTH FROM a.date) = $3
		  AND EXTRACT(YEAR FROM a.date) = $4
	`
	rows, err := db.Query(query, class, year, month, calendarYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grid := make(map[int]map[int]models.AttendanceStatus)
	for rows.Next() {
		var studentID, day int
		var status models.AttendanceStatus
		if err := rows.Scan(&studentID, &day, &status); err != nil {
			return nil, err
		}
		if grid[studentID] == nil {
			grid[studentID] = make(map[int]models.AttendanceStatus)
		}
		grid[studentID][day] = status
	}
	return grid, rows.Err()
}

// UpsertAttendanceBatch writes a full day-window save in one transaction
// and returns present/absent counts.
func UpsertAttendanceBatch(db *sql.DB, records []models.Attendance) (present, absent int, err error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO attendance (student_id, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (student_id, date)
		DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`)
	if err != nil {
		return 0, 0, err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.StudentID, r.Date, r.Status); err != nil {
			return 0, 0, err
		}
		if r.Status == models.Present {
			present++
		} else {
			absent++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return present, absent, nil
}

// GetAbsenteesByDate returns students recorded absent on a date, with
// phone numbers for the notification job.
func GetAbsenteesByDate(db *sql.DB, date time.Time) ([]*models.Student, error) {
	query := `
		SELECT st.id, st.name, st.roll, st.class, st.section, st.phone
		FROM attendance a
		JOIN students st ON st.id = a.student_id
		WHERE a.date = $1 AND a.status = 'absent'
		ORDER BY st.class, st.section, st.roll
	`
	rows, err := db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Roll, &s.Class, &s.Section, &s.Phone); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetAttendanceRateByDate computes the share of visible students marked
// present on a date. No rows for the date yields 0.
func GetAttendanceRateByDate(db *sql.DB, date time.Time) (float64, error) {
	var total, present int
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE a.status = 'present')
		FROM attendance a
		JOIN students st ON st.id = a.student_id AND st.available = true
		WHERE a.date = $1
	`
	err := db.QueryRow(query, date.Format("2006-01-02")).Scan(&total, &present)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) / float64(total) * 100, nil
}
