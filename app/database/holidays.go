package database

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/models"
)

const holidayColumns = `id, title, to_char(start_date, 'YYYY-MM-DD'),
	to_char(end_date, 'YYYY-MM-DD'), description, is_optional, created_at, updated_at`

func GetHolidays(db *sql.DB) ([]*models.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays ORDER BY start_date`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		h := &models.Holiday{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.StartDate, &h.EndDate, &h.Description,
			&h.IsOptional, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// GetHolidaysByDate returns every holiday range covering a calendar date.
// A date may fall inside zero or more ranges.
func GetHolidaysByDate(db *sql.DB, date string) ([]*models.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays
		WHERE $1::date BETWEEN start_date AND end_date
		ORDER BY start_date`
	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []*models.Holiday
	for rows.Next() {
		h := &models.Holiday{}
		if err := rows.Scan(
			&h.ID, &h.Title, &h.StartDate, &h.EndDate, &h.Description,
			&h.IsOptional, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func CreateHoliday(db *sql.DB, h *models.Holiday) error {
	query := `INSERT INTO holidays (title, start_date, end_date, description, is_optional, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query, h.Title, h.StartDate, h.EndDate, h.Description, h.IsOptional).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func UpdateHoliday(db *sql.DB, h *models.Holiday) error {
	query := `UPDATE holidays SET title = $1, start_date = $2, end_date = $3,
		description = $4, is_optional = $5, updated_at = NOW() WHERE id = $6`
	_, err := db.Exec(query, h.Title, h.StartDate, h.EndDate, h.Description, h.IsOptional, h.ID)
	return err
}

func DeleteHoliday(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM holidays WHERE id = $1`, id)
	return err
}
