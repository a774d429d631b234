package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// Department defines the academic streams for classes 9 and up.
// An empty department on a subject means it applies to all streams.
type Department string

const (
	Science  Department = "Science"
	Arts     Department = "Arts"
	Commerce Department = "Commerce"
)

// MarkType identifies one of the independently-capped components of a
// subject's full mark.
type MarkType string

const (
	CQ        MarkType = "cq"
	MCQ       MarkType = "mcq"
	Practical MarkType = "practical"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// StudentStatus tracks a student's promotion state at year end.
type StudentStatus string

const (
	Enrolled  StudentStatus = "enrolled"
	Promoted  StudentStatus = "promoted"
	Retained  StudentStatus = "retained"
	Graduated StudentStatus = "graduated"
)

// SMSStatus records the outcome of a notification attempt.
type SMSStatus string

const (
	SMSSent   SMSStatus = "sent"
	SMSFailed SMSStatus = "failed"
)

// UserRole separates admin dashboard accounts from teacher portal accounts.
type UserRole string

const (
	AdminRole   UserRole = "admin"
	TeacherRole UserRole = "teacher"
)
