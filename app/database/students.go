package database

import (
	"database/sql"
	"fmt"

	"github.com/Mutiur03/School-sub002/app/models"
)

const studentColumns = `id, name, roll, class, section, department, year, phone,
	father_name, mother_name, to_char(dob, 'YYYY-MM-DD'), gender, address,
	has_stipend, status, available, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.Roll, &s.Class, &s.Section, &s.Department, &s.Year,
		&s.Phone, &s.FatherName, &s.MotherName, &s.DOB, &s.Gender, &s.Address,
		&s.HasStipend, &s.Status, &s.Available, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentsByYear returns all visible students enrolled in a year,
// ordered for the admin table.
func GetStudentsByYear(db *sql.DB, year int) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students
		WHERE year = $1 AND available = true
		ORDER BY class, section, roll`, studentColumns)

	rows, err := db.Query(query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentsByClass returns visible students for a class+year, roll order.
func GetStudentsByClass(db *sql.DB, class, year int) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students
		WHERE class = $1 AND year = $2 AND available = true
		ORDER BY section, roll`, studentColumns)

	rows, err := db.Query(query, class, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id int) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	return scanStudent(db.QueryRow(query, id))
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students
		(name, roll, class, section, department, year, phone, father_name,
		 mother_name, dob, gender, address, has_stipend, status, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'enrolled', true, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return db.QueryRow(query,
		s.Name, s.Roll, s.Class, s.Section, s.Department, s.Year, s.Phone,
		s.FatherName, s.MotherName, s.DOB, s.Gender, s.Address, s.HasStipend,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// CreateStudentsBatch inserts a bulk import in one transaction. The batch
// is atomic: any failing row rolls back the whole import.
func CreateStudentsBatch(db *sql.DB, students []*models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO students
		(name, roll, class, section, department, year, phone, father_name,
		 mother_name, dob, gender, address, has_stipend, status, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'enrolled', true, NOW(), NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range students {
		if _, err := stmt.Exec(
			s.Name, s.Roll, s.Class, s.Section, s.Department, s.Year, s.Phone,
			s.FatherName, s.MotherName, s.DOB, s.Gender, s.Address, s.HasStipend,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET
		name = $1, roll = $2, class = $3, section = $4, department = $5,
		year = $6, phone = $7, father_name = $8, mother_name = $9, dob = $10,
		gender = $11, address = $12, has_stipend = $13, updated_at = NOW()
		WHERE id = $14`
	_, err := db.Exec(query,
		s.Name, s.Roll, s.Class, s.Section, s.Department, s.Year, s.Phone,
		s.FatherName, s.MotherName, s.DOB, s.Gender, s.Address, s.HasStipend, s.ID,
	)
	return err
}

// UpdateStudentStatus records a promotion decision. Promoted students move
// up a class for the new year; the row itself is kept so earlier years'
// marks and attendance stay intact.
func UpdateStudentStatus(db *sql.DB, id int, status models.StudentStatus) error {
	_, err := db.Exec(`UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

// HideStudent soft-deletes: the student disappears from lists but keeps
// marks and attendance history.
func HideStudent(db *sql.DB, id int) error {
	_, err := db.Exec(`UPDATE students SET available = false, updated_at = NOW() WHERE id = $1`, id)
	return err
}
