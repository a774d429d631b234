package models

import "time"

// User is a login account. Admins manage the dashboard; teacher accounts
// double as the staff record for the teacher portal and for subject
// assignment.
type User struct {
	ID          string     `json:"id" validate:"required,uuid"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"-" validate:"required,min=8"`
	Name        string     `json:"name" validate:"required"`
	Phone       *string    `json:"phone,omitempty"`
	Designation *string    `json:"designation,omitempty"`
	Role        UserRole   `json:"role" validate:"required,oneof=admin teacher"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// IsAdmin reports whether the account may use admin-only endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == AdminRole
}

// Staff is a non-teaching staff record. Staff do not log in.
type Staff struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Designation string    `json:"designation"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Address     *string   `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session is a server-side login session backing the JWT cookie.
type Session struct {
	ID        string    `json:"id" validate:"required,uuid"`
	UserID    string    `json:"user_id" validate:"required,uuid"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats aggregates the counters shown on the admin landing page.
type DashboardStats struct {
	TotalStudents     int     `json:"total_students"`
	TotalTeachers     int     `json:"total_teachers"`
	TotalSubjects     int     `json:"total_subjects"`
	UpcomingExams     int     `json:"upcoming_exams"`
	TodayAttendance   float64 `json:"today_attendance"`
	NoticesThisMonth  int     `json:"notices_this_month"`
	SMSSentToday      int     `json:"sms_sent_today"`
	SMSFailedToday    int     `json:"sms_failed_today"`
	HolidaysRemaining int     `json:"holidays_remaining"`
}
