package models

import "time"

// Subject defines a taught subject for a class and year, including the
// mark allocation for each mark type. CQMark + MCQMark + PracticalMark is
// assumed not to exceed FullMark; the reconciliation engine relies on the
// per-type maximums but does not re-validate the sum.
type Subject struct {
	ID            int       `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Class         int       `json:"class" validate:"required,gte=1,lte=10"`
	Department    *string   `json:"department,omitempty"` // nil applies to all departments
	FullMark      int       `json:"full_mark" validate:"gte=0"`
	CQMark        int       `json:"cq_mark" validate:"gte=0"`
	MCQMark       int       `json:"mcq_mark" validate:"gte=0"`
	PracticalMark int       `json:"practical_mark" validate:"gte=0"`
	Year          int       `json:"year" validate:"required"`
	TeacherID     *string   `json:"teacher_id,omitempty"`
	TeacherName   string    `json:"teacher_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MaxFor returns the configured maximum for a mark type. A zero maximum
// means the subject does not allocate that mark type and the field is not
// editable.
func (s *Subject) MaxFor(t MarkType) int {
	switch t {
	case CQ:
		return s.CQMark
	case MCQ:
		return s.MCQMark
	case Practical:
		return s.PracticalMark
	}
	return 0
}

// AppliesTo reports whether this subject is taken by the given student.
// A subject with a department applies only to students of that department;
// a subject without one applies to everyone in the class.
func (s *Subject) AppliesTo(studentDept *string) bool {
	if s.Department == nil || *s.Department == "" {
		return true
	}
	return studentDept != nil && *studentDept == *s.Department
}
