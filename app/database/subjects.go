package database

import (
	"database/sql"

	"github.com/Mutiur03/School-sub002/app/models"
)

func GetSubjectsByClassAndYear(db *sql.DB, class, year int) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.class, s.department, s.full_mark, s.cq_mark,
		       s.mcq_mark, s.practical_mark, s.year, s.teacher_id,
		       COALESCE(u.name, ''), s.created_at, s.updated_at
		FROM subjects s
		LEFT JOIN users u ON u.id = s.teacher_id
		WHERE s.class = $1 AND s.year = $2
		ORDER BY s.name
	`
	rows, err := db.Query(query, class, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubjects(rows)
}

func GetSubjectsByYear(db *sql.DB, year int) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.class, s.department, s.full_mark, s.cq_mark,
		       s.mcq_mark, s.practical_mark, s.year, s.teacher_id,
		       COALESCE(u.name, ''), s.created_at, s.updated_at
		FROM subjects s
		LEFT JOIN users u ON u.id = s.teacher_id
		WHERE s.year = $1
		ORDER BY s.class, s.name
	`
	rows, err := db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubjects(rows)
}

// GetSubjectsByTeacher powers the teacher portal's "my subjects" view.
func GetSubjectsByTeacher(db *sql.DB, teacherID string, year int) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.class, s.department, s.full_mark, s.cq_mark,
		       s.mcq_mark, s.practical_mark, s.year, s.teacher_id,
		       COALESCE(u.name, ''), s.created_at, s.updated_at
		FROM subjects s
		LEFT JOIN users u ON u.id = s.teacher_id
		WHERE s.teacher_id = $1 AND s.year = $2
		ORDER BY s.class, s.name
	`
	rows, err := db.Query(query, teacherID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSubjects(rows)
}

func scanSubjects(rows *sql.Rows) ([]*models.Subject, error) {
	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Class, &s.Department, &s.FullMark, &s.CQMark,
			&s.MCQMark, &s.PracticalMark, &s.Year, &s.TeacherID, &s.TeacherName,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id int) (*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.class, s.department, s.full_mark, s.cq_mark,
		       s.mcq_mark, s.practical_mark, s.year, s.teacher_id,
		       COALESCE(u.name, ''), s.created_at, s.updated_at
		FROM subjects s
		LEFT JOIN users u ON u.id = s.teacher_id
		WHERE s.id = $1
	`
	s := &models.Subject{}
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.Name, &s.Class, &s.Department, &s.FullMark, &s.CQMark,
		&s.MCQMark, &s.PracticalMark, &s.Year, &s.TeacherID, &s.TeacherName,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateSubject(db *sql.DB, s *models.Subject) error {
	query := `INSERT INTO subjects
		(name, class, department, full_mark, cq_mark, mcq_mark, practical_mark, year, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		s.Name, s.Class, s.Department, s.FullMark, s.CQMark, s.MCQMark,
		s.PracticalMark, s.Year, s.TeacherID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// CreateSubjectsBatch inserts a bulk subject import atomically.
func CreateSubjectsBatch(db *sql.DB, subjects []*models.Subject) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO subjects
		(name, class, department, full_mark, cq_mark, mcq_mark, practical_mark, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range subjects {
		if _, err := stmt.Exec(
			s.Name, s.Class, s.Department, s.FullMark, s.CQMark, s.MCQMark,
			s.PracticalMark, s.Year,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func UpdateSubject(db *sql.DB, s *models.Subject) error {
	query := `UPDATE subjects SET
		name = $1, class = $2, department = $3, full_mark = $4, cq_mark = $5,
		mcq_mark = $6, practical_mark = $7, year = $8, teacher_id = $9, updated_at = NOW()
		WHERE id = $10`
	_, err := db.Exec(query,
		s.Name, s.Class, s.Department, s.FullMark, s.CQMark, s.MCQMark,
		s.PracticalMark, s.Year, s.TeacherID, s.ID,
	)
	return err
}

func DeleteSubject(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	return err
}
