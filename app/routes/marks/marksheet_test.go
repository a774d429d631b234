package marks

import (
	"testing"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarksheet(t *testing.T) {
	t.Run("groups by exam with per-exam totals", func(t *testing.T) {
		entries := []models.MarkEntry{
			{SubjectID: 1, SubjectName: "Bangla", ExamName: "Half Yearly", CQMarks: 50, MCQMarks: 20},
			{SubjectID: 2, SubjectName: "English", ExamName: "Half Yearly", CQMarks: 44, MCQMarks: 18},
			{SubjectID: 1, SubjectName: "Bangla", ExamName: "Annual", CQMarks: 60, MCQMarks: 25},
		}

		sheet := BuildMarksheet(entries)

		require.Len(t, sheet.ExamMarks, 2)
		require.Len(t, sheet.ExamMarks["Half Yearly"], 2)
		assert.Equal(t, 70, sheet.ExamMarks["Half Yearly"][0].Total)
		assert.Equal(t, 132, sheet.TotalMarksPerExam["Half Yearly"])
		assert.Equal(t, 85, sheet.TotalMarksPerExam["Annual"])
	})

	t.Run("no rows yields empty sheet rather than error", func(t *testing.T) {
		sheet := BuildMarksheet(nil)

		assert.NotNil(t, sheet.ExamMarks)
		assert.NotNil(t, sheet.TotalMarksPerExam)
		assert.Empty(t, sheet.ExamMarks)
		assert.Empty(t, sheet.TotalMarksPerExam)
	})
}
