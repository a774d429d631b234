package database

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/lib/pq"
)

const examColumns = `id, exam_name, exam_year, levels,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	to_char(result_date, 'YYYY-MM-DD'), visible, created_at, updated_at`

func GetExamsByYear(db *sql.DB, year int) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE exam_year = $1 ORDER BY start_date NULLS LAST, exam_name`
	rows, err := db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		if err := rows.Scan(
			&e.ID, &e.ExamName, &e.ExamYear, pq.Array(&e.Levels),
			&e.StartDate, &e.EndDate, &e.ResultDate, &e.Visible,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func GetExamByID(db *sql.DB, id int) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE id = $1`
	e := &models.Exam{}
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.ExamName, &e.ExamYear, pq.Array(&e.Levels),
		&e.StartDate, &e.EndDate, &e.ResultDate, &e.Visible,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateExam(db *sql.DB, e *models.Exam) error {
	query := `INSERT INTO exams (exam_name, exam_year, levels, start_date, end_date, result_date, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		e.ExamName, e.ExamYear, pq.Array(e.Levels),
		e.StartDate, e.EndDate, e.ResultDate, e.Visible,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateExam(db *sql.DB, e *models.Exam) error {
	query := `UPDATE exams SET exam_name = $1, exam_year = $2, levels = $3,
		start_date = $4, end_date = $5, result_date = $6, updated_at = NOW()
		WHERE id = $7`
	_, err := db.Exec(query,
		e.ExamName, e.ExamYear, pq.Array(e.Levels),
		e.StartDate, e.EndDate, e.ResultDate, e.ID,
	)
	return err
}

// SetExamVisibility toggles result publication independently of edits.
func SetExamVisibility(db *sql.DB, id int, visible bool) error {
	_, err := db.Exec(`UPDATE exams SET visible = $1, updated_at = NOW() WHERE id = $2`, visible, id)
	return err
}

func DeleteExam(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM exams WHERE id = $1`, id)
	return err
}

// GetExamNames returns the configured valid exam names. Terminal names
// (board exams graded by GPA) are flagged.
func GetExamNames(db *sql.DB) ([]*models.ExamName, error) {
	rows, err := db.Query(`SELECT id, name, is_terminal FROM exam_names ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []*models.ExamName
	for rows.Next() {
		n := &models.ExamName{}
		if err := rows.Scan(&n.ID, &n.Name, &n.IsTerminal); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// IsTerminalExam reports whether the named exam is graded by GPA.
func IsTerminalExam(db *sql.DB, examName string) (bool, error) {
	var terminal bool
	err := db.QueryRow(`SELECT is_terminal FROM exam_names WHERE name = $1`, examName).Scan(&terminal)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return terminal, err
}

func GetSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func SetSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	return err
}
