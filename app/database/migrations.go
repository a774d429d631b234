package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. All
// statements are idempotent so startup can run them unconditionally.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			phone VARCHAR(20),
			designation TEXT,
			role VARCHAR(10) NOT NULL DEFAULT 'teacher',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			roll INTEGER NOT NULL,
			class INTEGER NOT NULL,
			section TEXT NOT NULL DEFAULT '',
			department TEXT,
			year INTEGER NOT NULL,
			phone VARCHAR(20),
			father_name TEXT,
			mother_name TEXT,
			dob DATE,
			gender VARCHAR(10),
			address TEXT,
			has_stipend BOOLEAN NOT NULL DEFAULT false,
			status VARCHAR(12) NOT NULL DEFAULT 'enrolled',
			available BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (roll, class, section, year)
		)`,
		`CREATE TABLE IF NOT EXISTS staffs (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			designation TEXT NOT NULL DEFAULT '',
			phone VARCHAR(20),
			email TEXT,
			address TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			class INTEGER NOT NULL,
			department TEXT,
			full_mark INTEGER NOT NULL DEFAULT 100,
			cq_mark INTEGER NOT NULL DEFAULT 0,
			mcq_mark INTEGER NOT NULL DEFAULT 0,
			practical_mark INTEGER NOT NULL DEFAULT 0,
			year INTEGER NOT NULL,
			teacher_id UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id SERIAL PRIMARY KEY,
			exam_name TEXT NOT NULL,
			exam_year INTEGER NOT NULL,
			levels INTEGER[] NOT NULL DEFAULT '{}',
			start_date DATE,
			end_date DATE,
			result_date DATE,
			visible BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (exam_name, exam_year)
		)`,
		`CREATE TABLE IF NOT EXISTS exam_names (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			is_terminal BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS marks (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id),
			subject_id INTEGER NOT NULL REFERENCES subjects(id),
			exam_name TEXT NOT NULL,
			year INTEGER NOT NULL,
			cq_marks INTEGER NOT NULL DEFAULT 0,
			mcq_marks INTEGER NOT NULL DEFAULT 0,
			practical_marks INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, subject_id, exam_name, year)
		)`,
		`CREATE TABLE IF NOT EXISTS gpa_entries (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id),
			exam_name TEXT NOT NULL,
			year INTEGER NOT NULL,
			gpa NUMERIC(4,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, exam_name, year)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL REFERENCES students(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS holidays (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			is_optional BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS notices (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			notice_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sms_logs (
			id SERIAL PRIMARY KEY,
			student_id INTEGER REFERENCES students(id),
			phone VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := seedExamNames(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedExamNames loads the configured exam-name lists. The two source admin
// screens carried divergent option lists; the union is seeded here and the
// settings API is the single source of truth from then on.
func seedExamNames(db *sql.DB) error {
	seed := []struct {
		name     string
		terminal bool
	}{
		{"Class Test", false},
		{"Half Yearly", false},
		{"Annual", false},
		{"Test", false},
		{"Pre Selection", false},
		{"Selection", false},
		{"JSC", true},
		{"SSC", true},
	}

	for _, e := range seed {
		_, err := db.Exec(
			`INSERT INTO exam_names (name, is_terminal) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			e.name, e.terminal,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
