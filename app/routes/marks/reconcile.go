package marks

import (
	"strconv"
	"strings"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/shopspring/decimal"
)

// MarkChange is a single incoming edit: one mark type of one subject for
// one student. The raw value comes straight from the input field.
type MarkChange struct {
	StudentID int             `json:"student_id"`
	SubjectID int             `json:"subject_id"`
	Type      models.MarkType `json:"mark_type"`
	Raw       string          `json:"value"`
}

// maxGPA is the board-exam grading ceiling.
var maxGPA = decimal.NewFromInt(5)

// ClampMark normalizes a raw mark input against the subject's configured
// maximum for that mark type. Blank or non-numeric input becomes 0, input
// is length-capped to 3 digits before parsing, and the result is clamped
// to [0, max]. A zero max means the subject does not allocate the mark
// type: the field is not editable and stays 0.
func ClampMark(raw string, max int) int {
	if max <= 0 {
		return 0
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if len(raw) > 3 {
		raw = raw[:3]
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ApplyMark merges one incoming change into the existing per-student mark
// collection. If the (student, subject) pair already has an entry only the
// targeted mark type is updated; otherwise a new entry is created with the
// other types zeroed. The merge is pure in-memory bookkeeping: the caller
// persists the full merged payload afterwards.
func ApplyMark(existing map[int][]models.MarkEntry, change MarkChange, catalog map[int]*models.Subject, examName string, year int) map[int][]models.MarkEntry {
	subject, ok := catalog[change.SubjectID]
	if !ok {
		return existing
	}

	value := ClampMark(change.Raw, subject.MaxFor(change.Type))

	entries := existing[change.StudentID]
	for i := range entries {
		if entries[i].SubjectID == change.SubjectID {
			entries[i].Set(change.Type, value)
			return existing
		}
	}

	entry := models.MarkEntry{
		StudentID:   change.StudentID,
		SubjectID:   change.SubjectID,
		ExamName:    examName,
		Year:        year,
		SubjectName: subject.Name,
	}
	entry.Set(change.Type, value)
	existing[change.StudentID] = append(existing[change.StudentID], entry)
	return existing
}

// EligibleStudents filters a class roster down to the students a subject
// applies to. Department-scoped subjects exclude students of other
// departments; they are rendered "not applicable" and never appear in that
// subject's submission payload.
func EligibleStudents(subject *models.Subject, students []*models.Student) []*models.Student {
	var eligible []*models.Student
	for _, st := range students {
		if subject.AppliesTo(st.Department) {
			eligible = append(eligible, st)
		}
	}
	return eligible
}

// BuildSubmission produces the full persistence payload for a class view:
// one entry per (student, applicable subject), merged from existing marks
// where present and zeroed otherwise. All-zero entries are included so the
// stored record matches exactly what the matrix displayed.
func BuildSubmission(existing map[int][]models.MarkEntry, students []*models.Student, subjects []*models.Subject, examName string, year int) []models.MarkEntry {
	byStudentSubject := make(map[int]map[int]models.MarkEntry)
	for studentID, entries := range existing {
		byStudentSubject[studentID] = make(map[int]models.MarkEntry, len(entries))
		for _, e := range entries {
			byStudentSubject[studentID][e.SubjectID] = e
		}
	}

	var payload []models.MarkEntry
	for _, st := range students {
		for _, sub := range subjects {
			if !sub.AppliesTo(st.Department) {
				continue
			}
			entry, ok := byStudentSubject[st.ID][sub.ID]
			if !ok {
				entry = models.MarkEntry{
					StudentID:   st.ID,
					SubjectID:   sub.ID,
					ExamName:    examName,
					Year:        year,
					SubjectName: sub.Name,
				}
			}
			payload = append(payload, entry)
		}
	}
	return payload
}

// ClampGPA normalizes a raw GPA input for a terminal exam: clamped to
// [0.00, 5.00] and truncated (not rounded) to two decimal digits.
// Non-numeric input becomes 0.00.
func ClampGPA(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		d = decimal.Zero
	}
	if d.GreaterThan(maxGPA) {
		d = maxGPA
	}
	return d.Truncate(2).StringFixed(2)
}
