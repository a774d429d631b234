package database

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/models"
)

// CreateEvent adds a new event to the database
func CreateEvent(db *sql.DB, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		event.Title,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.Location,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// GetEvents retrieves all events ordered by start_date
func GetEvents(db *sql.DB) ([]models.Event, error) {
	query := `
		SELECT id, title, description, to_char(start_date, 'YYYY-MM-DD'),
		       to_char(end_date, 'YYYY-MM-DD'), location, created_at, updated_at
		FROM events
		ORDER BY start_date ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
			&e.Location, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func UpdateEvent(db *sql.DB, event *models.Event) error {
	query := `UPDATE events SET title = $1, description = $2, start_date = $3,
		end_date = $4, location = $5, updated_at = NOW() WHERE id = $6`
	_, err := db.Exec(query, event.Title, event.Description, event.StartDate,
		event.EndDate, event.Location, event.ID)
	return err
}

// DeleteEvent deletes an event by ID
func DeleteEvent(db *sql.DB, id int) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Notices

func GetNotices(db *sql.DB) ([]models.Notice, error) {
	query := `
		SELECT id, title, description, to_char(notice_date, 'YYYY-MM-DD'), created_at, updated_at
		FROM notices
		ORDER BY notice_date DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []models.Notice
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.NoticeDate, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func CreateNotice(db *sql.DB, n *models.Notice) error {
	query := `INSERT INTO notices (title, description, notice_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query, n.Title, n.Description, n.NoticeDate).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func UpdateNotice(db *sql.DB, n *models.Notice) error {
	query := `UPDATE notices SET title = $1, description = $2, notice_date = $3, updated_at = NOW() WHERE id = $4`
	_, err := db.Exec(query, n.Title, n.Description, n.NoticeDate, n.ID)
	return err
}

func DeleteNotice(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM notices WHERE id = $1`, id)
	return err
}
