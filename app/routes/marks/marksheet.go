package marks

import "github.com/Mutiur03/School-sub002/app/models"

// SubjectMarks is one marksheet cell: a subject's component marks in one
// exam.
type SubjectMarks struct {
	SubjectID      int    `json:"subject_id"`
	SubjectName    string `json:"subject_name"`
	CQMarks        int    `json:"cq_marks"`
	MCQMarks       int    `json:"mcq_marks"`
	PracticalMarks int    `json:"practical_marks"`
	Total          int    `json:"total"`
}

// Marksheet groups a student's marks by exam, with a totals row per exam.
type Marksheet struct {
	ExamMarks         map[string][]SubjectMarks `json:"exam_marks"`
	TotalMarksPerExam map[string]int            `json:"total_marks_per_exam"`
}

// BuildMarksheet projects a student's mark rows into the per-exam marksheet
// view. No rows yields an empty marksheet, not an error; the caller renders
// a "no data" state.
func BuildMarksheet(entries []models.MarkEntry) Marksheet {
	sheet := Marksheet{
		ExamMarks:         make(map[string][]SubjectMarks),
		TotalMarksPerExam: make(map[string]int),
	}

	for _, e := range entries {
		sm := SubjectMarks{
			SubjectID:      e.SubjectID,
			SubjectName:    e.SubjectName,
			CQMarks:        e.Get(models.CQ),
			MCQMarks:       e.Get(models.MCQ),
			PracticalMarks: e.Get(models.Practical),
			Total:          e.Total(),
		}
		sheet.ExamMarks[e.ExamName] = append(sheet.ExamMarks[e.ExamName], sm)
		sheet.TotalMarksPerExam[e.ExamName] += sm.Total
	}

	return sheet
}
