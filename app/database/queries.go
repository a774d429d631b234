package database

import (
	"database/sql"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, phone, designation, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Phone,
		&user.Designation, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, phone, designation, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.Phone,
		&user.Designation, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteExpiredSessions removes stale sessions; the scheduler calls this
// nightly.
func DeleteExpiredSessions(db *sql.DB) (int64, error) {
	res, err := db.Exec(`DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// CreateTeacher creates a teacher login account that doubles as the staff
// record used for subject assignment.
func CreateTeacher(db *sql.DB, user *models.User) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, name, phone, designation, role, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 'teacher', true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, hashedPassword, user.Name, user.Phone, user.Designation).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

// CreateAdmin creates an admin account for the dashboard.
func CreateAdmin(db *sql.DB, user *models.User) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, name, role, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, 'admin', true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, user.Email, hashedPassword, user.Name).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
}

func GetAllTeachers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT id, email, name, phone, designation, role, is_active, created_at, updated_at
			  FROM users WHERE role = 'teacher' AND deleted_at IS NULL ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		t := &models.User{}
		if err := rows.Scan(
			&t.ID, &t.Email, &t.Name, &t.Phone, &t.Designation,
			&t.Role, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func UpdateTeacher(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, phone = $3, designation = $4, updated_at = NOW()
			  WHERE id = $5 AND role = 'teacher'`
	_, err := db.Exec(query, user.Name, user.Email, user.Phone, user.Designation, user.ID)
	return err
}

// DeleteTeacher soft-deletes the account so historic subject assignments
// stay resolvable.
func DeleteTeacher(db *sql.DB, teacherID string) error {
	query := `UPDATE users SET deleted_at = NOW(), is_active = false WHERE id = $1 AND role = 'teacher'`
	_, err := db.Exec(query, teacherID)
	return err
}

// Staff records

func GetAllStaffs(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT id, name, designation, phone, email, address, created_at, updated_at
			  FROM staffs ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staffs []*models.Staff
	for rows.Next() {
		s := &models.Staff{}
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Designation, &s.Phone, &s.Email, &s.Address,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		staffs = append(staffs, s)
	}
	return staffs, rows.Err()
}

func CreateStaff(db *sql.DB, staff *models.Staff) error {
	query := `INSERT INTO staffs (name, designation, phone, email, address, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, staff.Name, staff.Designation, staff.Phone, staff.Email, staff.Address).
		Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func UpdateStaff(db *sql.DB, staff *models.Staff) error {
	query := `UPDATE staffs SET name = $1, designation = $2, phone = $3, email = $4, address = $5, updated_at = NOW()
			  WHERE id = $6`
	_, err := db.Exec(query, staff.Name, staff.Designation, staff.Phone, staff.Email, staff.Address, staff.ID)
	return err
}

func DeleteStaff(db *sql.DB, id int) error {
	_, err := db.Exec(`DELETE FROM staffs WHERE id = $1`, id)
	return err
}
