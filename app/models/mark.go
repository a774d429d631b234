package models

import "time"

// MarkEntry stores a student's marks for one subject in one exam. Each
// component is clamped to the subject's configured maximum for that mark
// type; a type the subject does not allocate stays 0.
type MarkEntry struct {
	ID             int       `json:"id"`
	StudentID      int       `json:"student_id"`
	SubjectID      int       `json:"subject_id"`
	ExamName       string    `json:"exam_name"`
	Year           int       `json:"year"`
	CQMarks        int       `json:"cq_marks"`
	MCQMarks       int       `json:"mcq_marks"`
	PracticalMarks int       `json:"practical_marks"`
	SubjectName    string    `json:"subject_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Total returns the summed components for marksheet display.
func (m *MarkEntry) Total() int {
	return m.CQMarks + m.MCQMarks + m.PracticalMarks
}

// Get returns the stored value for a mark type.
func (m *MarkEntry) Get(t MarkType) int {
	switch t {
	case CQ:
		return m.CQMarks
	case MCQ:
		return m.MCQMarks
	case Practical:
		return m.PracticalMarks
	}
	return 0
}

// Set overwrites the stored value for a mark type, leaving the other
// components untouched.
func (m *MarkEntry) Set(t MarkType, v int) {
	switch t {
	case CQ:
		m.CQMarks = v
	case MCQ:
		m.MCQMarks = v
	case Practical:
		m.PracticalMarks = v
	}
}

// GPAEntry stores the board-exam GPA for a student, two-decimal precision
// with a 5.00 ceiling.
type GPAEntry struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	ExamName  string    `json:"exam_name"`
	Year      int       `json:"year"`
	GPA       string    `json:"gpa"`
	Roll      int       `json:"roll,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
