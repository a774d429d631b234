package database

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/models"
)

// GetMarksByClassExam loads the stored mark entries for every student of a
// class in one exam, keyed by student id. This is the "existing" side of
// the reconciliation merge.
func GetMarksByClassExam(db *sql.DB, class, year int, examName string) (map[int][]models.MarkEntry, error) {
	query := `
		SELECT m.id, m.student_id, m.subject_id, m.exam_name, m.year,
		       m.cq_marks, m.mcq_marks, m.practical_marks,
		       sub.name, m.created_at, m.updated_at
		FROM marks m
		JOIN students st ON st.id = m.student_id
		JOIN subjects sub ON sub.id = m.subject_id
		WHERE st.class = $1 AND m.year = $2 AND m.exam_name = $3
		ORDER BY st.roll, sub.name
	`
	rows, err := db.Query(query, class, year, examName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[int][]models.MarkEntry)
	for rows.Next() {
		var m models.MarkEntry
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.ExamName, &m.Year,
			&m.CQMarks, &m.MCQMarks, &m.PracticalMarks, &m.SubjectName,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		existing[m.StudentID] = append(existing[m.StudentID], m)
	}
	return existing, rows.Err()
}

// UpsertMarks persists the full merged per-student payload in one
// transaction. Every entry the caller's view displayed is written, even
// all-zero ones, so the server record matches the submitted matrix.
func UpsertMarks(db *sql.DB, entries []models.MarkEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO marks (student_id, subject_id, exam_name, year, cq_marks, mcq_marks, practical_marks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (student_id, subject_id, exam_name, year)
		DO UPDATE SET cq_marks = EXCLUDED.cq_marks,
		              mcq_marks = EXCLUDED.mcq_marks,
		              practical_marks = EXCLUDED.practical_marks,
		              updated_at = NOW()`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range entries {
		if _, err := stmt.Exec(
			m.StudentID, m.SubjectID, m.ExamName, m.Year,
			m.CQMarks, m.MCQMarks, m.PracticalMarks,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetMarksByStudent returns every mark row for one student across all
// exams of a year, for the marksheet.
func GetMarksByStudent(db *sql.DB, studentID, year int) ([]models.MarkEntry, error) {
	query := `
		SELECT m.id, m.student_id, m.subject_id, m.exam_name, m.year,
		       m.cq_marks, m.mcq_marks, m.practical_marks,
		       sub.name, m.created_at, m.updated_at
		FROM marks m
		JOIN subjects sub ON sub.id = m.subject_id
		WHERE m.student_id = $1 AND m.year = $2
		ORDER BY m.exam_name, sub.name
	`
	rows, err := db.Query(query, studentID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MarkEntry
	for rows.Next() {
		var m models.MarkEntry
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.SubjectID, &m.ExamName, &m.Year,
			&m.CQMarks, &m.MCQMarks, &m.PracticalMarks, &m.SubjectName,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, m)
	}
	return entries, rows.Err()
}

// GetGPAByYear returns roll-sorted GPA entries for all terminal exams of a
// year.
func GetGPAByYear(db *sql.DB, year int) ([]models.GPAEntry, error) {
	query := `
		SELECT g.id, g.student_id, g.exam_name, g.year, g.gpa::text,
		       st.roll, st.name, g.created_at, g.updated_at
		FROM gpa_entries g
		JOIN students st ON st.id = g.student_id
		WHERE g.year = $1
		ORDER BY g.exam_name, st.roll
	`
	rows, err := db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GPAEntry
	for rows.Next() {
		var g models.GPAEntry
		if err := rows.Scan(
			&g.ID, &g.StudentID, &g.ExamName, &g.Year, &g.GPA,
			&g.Roll, &g.Name, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, g)
	}
	return entries, rows.Err()
}

// GetGPAByClassExam returns the roll-sorted GPA list for one class and
// terminal exam.
func GetGPAByClassExam(db *sql.DB, class, year int, examName string) ([]models.GPAEntry, error) {
	query := `
		SELECT g.id, g.student_id, g.exam_name, g.year, g.gpa::text,
		       st.roll, st.name, g.created_at, g.updated_at
		FROM gpa_entries g
		JOIN students st ON st.id = g.student_id
		WHERE st.class = $1 AND g.year = $2 AND g.exam_name = $3
		ORDER BY st.roll
	`
	rows, err := db.Query(query, class, year, examName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.GPAEntry
	for rows.Next() {
		var g models.GPAEntry
		if err := rows.Scan(
			&g.ID, &g.StudentID, &g.ExamName, &g.Year, &g.GPA,
			&g.Roll, &g.Name, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, g)
	}
	return entries, rows.Err()
}

// UpsertGPA persists terminal-exam GPA submissions atomically.
func UpsertGPA(db *sql.DB, entries []models.GPAEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO gpa_entries (student_id, exam_name, year, gpa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (student_id, exam_name, year)
		DO UPDATE SET gpa = EXCLUDED.gpa, updated_at = NOW()`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range entries {
		if _, err := stmt.Exec(g.StudentID, g.ExamName, g.Year, g.GPA); err != nil {
			return err
		}
	}

	return tx.Commit()
}
