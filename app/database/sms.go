package database

import (
	"database/sql"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
)

func CreateSMSLog(db *sql.DB, logEntry *models.SMSLog) error {
	query := `INSERT INTO sms_logs (student_id, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`
	return db.QueryRow(query, logEntry.StudentID, logEntry.Phone, logEntry.Message, logEntry.Status).
		Scan(&logEntry.ID, &logEntry.CreatedAt)
}

func GetSMSLogs(db *sql.DB, limit, offset int) ([]models.SMSLog, error) {
	query := `SELECT id, student_id, phone, message, status, created_at
		FROM sms_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.SMSLog
	for rows.Next() {
		var l models.SMSLog
		if err := rows.Scan(&l.ID, &l.StudentID, &l.Phone, &l.Message, &l.Status, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// GetSMSCountsByDate returns sent/failed totals for a day's dashboard tile.
func GetSMSCountsByDate(db *sql.DB, date time.Time) (sent, failed int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'sent'),
		       COUNT(*) FILTER (WHERE status = 'failed')
		FROM sms_logs WHERE created_at::date = $1
	`
	err = db.QueryRow(query, date.Format("2006-01-02")).Scan(&sent, &failed)
	return sent, failed, err
}
