package models

import "time"

// Attendance represents a student's day-level attendance record. A
// (student, date) pair with no row is displayed as unset but persisted as
// absent once an admin saves the day.
type Attendance struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id" validate:"required"`
	Date      string           `json:"date" validate:"required"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AttendanceSummary is returned by the batch save endpoint so the caller
// can show exactly what was recorded and notified.
type AttendanceSummary struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	SMSSent   int `json:"sms_sent"`
	SMSFailed int `json:"sms_failed"`
}
