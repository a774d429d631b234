package models

import "time"

// SMSLog records one notification attempt. Gateway delivery is outside
// this service; the log row is the system of record for the dashboard.
type SMSLog struct {
	ID        int       `json:"id"`
	StudentID *int      `json:"student_id,omitempty"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    SMSStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
