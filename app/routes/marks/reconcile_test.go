package marks

import (
	"testing"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dept(d string) *string { return &d }

func testCatalog() map[int]*models.Subject {
	return map[int]*models.Subject{
		1: {ID: 1, Name: "Bangla", Class: 9, FullMark: 100, CQMark: 70, MCQMark: 30},
		2: {ID: 2, Name: "Physics", Class: 9, Department: dept("Science"), FullMark: 100, CQMark: 50, MCQMark: 25, PracticalMark: 25},
		3: {ID: 3, Name: "Religion", Class: 9, FullMark: 50, CQMark: 30, MCQMark: 20},
	}
}

func TestClampMark(t *testing.T) {
	t.Run("value above max clamps to max", func(t *testing.T) {
		assert.Equal(t, 30, ClampMark("45", 30))
	})

	t.Run("value within range is kept", func(t *testing.T) {
		assert.Equal(t, 28, ClampMark("28", 30))
		assert.Equal(t, 0, ClampMark("0", 30))
		assert.Equal(t, 30, ClampMark("30", 30))
	})

	t.Run("blank and non-numeric input normalize to zero", func(t *testing.T) {
		assert.Equal(t, 0, ClampMark("", 30))
		assert.Equal(t, 0, ClampMark("  ", 30))
		assert.Equal(t, 0, ClampMark("abc", 30))
		assert.Equal(t, 0, ClampMark("-5", 30))
	})

	t.Run("input is length-capped to three digits", func(t *testing.T) {
		assert.Equal(t, 100, ClampMark("1000", 100))
		// "65432" caps to "654" first, then clamps to the max.
		assert.Equal(t, 70, ClampMark("65432", 70))
		assert.Equal(t, 654, ClampMark("65432", 700))
	})

	t.Run("zero max means not editable", func(t *testing.T) {
		assert.Equal(t, 0, ClampMark("25", 0))
	})
}

func TestApplyMark(t *testing.T) {
	catalog := testCatalog()

	t.Run("merge does not disturb other subjects or mark types", func(t *testing.T) {
		existing := map[int][]models.MarkEntry{
			7: {
				{StudentID: 7, SubjectID: 1, CQMarks: 10, MCQMarks: 5},
				{StudentID: 7, SubjectID: 3, CQMarks: 8},
			},
		}

		existing = ApplyMark(existing, MarkChange{StudentID: 7, SubjectID: 1, Type: models.CQ, Raw: "20"}, catalog, "Half Yearly", 2024)

		require.Len(t, existing[7], 2)
		assert.Equal(t, 20, existing[7][0].CQMarks)
		assert.Equal(t, 5, existing[7][0].MCQMarks, "untouched mark type must survive")
		assert.Equal(t, 8, existing[7][1].CQMarks, "other subject must survive")
	})

	t.Run("missing entry is created with other types zeroed", func(t *testing.T) {
		existing := map[int][]models.MarkEntry{}

		existing = ApplyMark(existing, MarkChange{StudentID: 9, SubjectID: 2, Type: models.Practical, Raw: "19"}, catalog, "Half Yearly", 2024)

		require.Len(t, existing[9], 1)
		entry := existing[9][0]
		assert.Equal(t, 19, entry.PracticalMarks)
		assert.Equal(t, 0, entry.CQMarks)
		assert.Equal(t, 0, entry.MCQMarks)
		assert.Equal(t, "Half Yearly", entry.ExamName)
		assert.Equal(t, 2024, entry.Year)
	})

	t.Run("incoming value is clamped on merge", func(t *testing.T) {
		existing := map[int][]models.MarkEntry{}

		existing = ApplyMark(existing, MarkChange{StudentID: 9, SubjectID: 3, Type: models.CQ, Raw: "45"}, catalog, "Annual", 2024)

		assert.Equal(t, 30, existing[9][0].CQMarks)
	})

	t.Run("unknown subject is a no-op", func(t *testing.T) {
		existing := map[int][]models.MarkEntry{}
		existing = ApplyMark(existing, MarkChange{StudentID: 9, SubjectID: 99, Type: models.CQ, Raw: "10"}, catalog, "Annual", 2024)
		assert.Empty(t, existing)
	})
}

func TestEligibleStudents(t *testing.T) {
	students := []*models.Student{
		{ID: 1, Name: "Karim", Department: dept("Science")},
		{ID: 2, Name: "Rahima", Department: dept("Arts")},
		{ID: 3, Name: "Salma"},
	}

	t.Run("department-scoped subject excludes other departments", func(t *testing.T) {
		physics := testCatalog()[2]
		eligible := EligibleStudents(physics, students)
		require.Len(t, eligible, 1)
		assert.Equal(t, 1, eligible[0].ID)
	})

	t.Run("subject without department applies to everyone", func(t *testing.T) {
		bangla := testCatalog()[1]
		assert.Len(t, EligibleStudents(bangla, students), 3)
	})
}

func TestBuildSubmission(t *testing.T) {
	catalog := testCatalog()
	subjects := []*models.Subject{catalog[1], catalog[2]}
	students := []*models.Student{
		{ID: 1, Name: "Karim", Department: dept("Science")},
		{ID: 2, Name: "Rahima", Department: dept("Arts")},
	}

	existing := map[int][]models.MarkEntry{
		1: {{StudentID: 1, SubjectID: 2, ExamName: "Half Yearly", Year: 2024, CQMarks: 40}},
	}

	payload := BuildSubmission(existing, students, subjects, "Half Yearly", 2024)

	// Karim: Bangla (zeroed) + Physics (existing). Rahima: Bangla only —
	// the Science-scoped Physics row must not appear for an Arts student.
	require.Len(t, payload, 3)

	var rahimaSubjects []int
	for _, e := range payload {
		if e.StudentID == 2 {
			rahimaSubjects = append(rahimaSubjects, e.SubjectID)
		}
		if e.StudentID == 1 && e.SubjectID == 2 {
			assert.Equal(t, 40, e.CQMarks, "existing marks carried into payload")
		}
		if e.StudentID == 1 && e.SubjectID == 1 {
			assert.Zero(t, e.CQMarks, "untouched cells submitted as zero")
		}
	}
	assert.Equal(t, []int{1}, rahimaSubjects)
}

func TestClampGPA(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"7.5", "5.00"},
		{"5.01", "5.00"},
		{"5", "5.00"},
		{"3.456", "3.45"}, // truncation, not rounding
		{"3.449", "3.44"},
		{"4", "4.00"},
		{"0", "0.00"},
		{"-1", "0.00"},
		{"abc", "0.00"},
		{"", "0.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampGPA(tc.in), "input %q", tc.in)
	}
}
