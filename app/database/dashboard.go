package database

import (
	"database/sql"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
)

// GetDashboardStats aggregates the admin landing page counters. Failures
// on individual counters degrade to zero rather than failing the page.
func GetDashboardStats(db *sql.DB, year int) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	now := time.Now()

	err := db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE year = $1 AND available = true`, year,
	).Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM users WHERE role = 'teacher' AND deleted_at IS NULL`,
	).Scan(&stats.TotalTeachers); err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM subjects WHERE year = $1`, year,
	).Scan(&stats.TotalSubjects); err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM exams WHERE exam_year = $1 AND start_date > NOW()`, year,
	).Scan(&stats.UpcomingExams); err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM notices
		 WHERE EXTRACT(MONTH FROM notice_date) = $1 AND EXTRACT(YEAR FROM notice_date) = $2`,
		int(now.Month()), now.Year(),
	).Scan(&stats.NoticesThisMonth); err != nil {
		return nil, err
	}

	if err := db.QueryRow(
		`SELECT COUNT(*) FROM holidays WHERE end_date >= NOW()`,
	).Scan(&stats.HolidaysRemaining); err != nil {
		return nil, err
	}

	rate, err := GetAttendanceRateByDate(db, now)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	stats.TodayAttendance = rate

	sent, failed, err := GetSMSCountsByDate(db, now)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	stats.SMSSentToday = sent
	stats.SMSFailedToday = failed

	return stats, nil
}
