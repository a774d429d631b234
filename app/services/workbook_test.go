package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// memFile adapts an in-memory buffer to the multipart upload interface.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func TestParseWorkbook(t *testing.T) {
	t.Run("round-trips an xlsx upload into rows", func(t *testing.T) {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		require.NoError(t, f.SetCellValue(sheet, "A1", "name"))
		require.NoError(t, f.SetCellValue(sheet, "B1", "roll"))
		require.NoError(t, f.SetCellValue(sheet, "A2", "Karim"))
		require.NoError(t, f.SetCellValue(sheet, "B2", 7))

		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		rows, err := ParseWorkbook(memFile{bytes.NewReader(buf.Bytes())}, "upload.xlsx")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"name", "roll"}, rows[0])
		assert.Equal(t, []string{"Karim", "7"}, rows[1])
	})

	t.Run("rejects legacy xls with a clear message", func(t *testing.T) {
		_, err := ParseWorkbook(memFile{bytes.NewReader(nil)}, "admission.xls")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "re-save the file as .xlsx")
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		_, err := ParseWorkbook(memFile{bytes.NewReader(nil)}, "admission.csv")
		require.Error(t, err)
	})
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename("admission_list", 2024)

	assert.True(t, strings.HasPrefix(name, "admission_list_2024_"), name)
	assert.True(t, strings.HasSuffix(name, ".xlsx"), name)
	// prefix + year + "_20060102_150405" + ".xlsx"
	assert.Len(t, name, len("admission_list_2024_")+len("20060102_150405")+len(".xlsx"))
}

func TestBuildAdmissionListWorkbook(t *testing.T) {
	dept := "Science"
	students := []*models.Student{
		{Roll: 1, Name: "Karim", Class: 9, Section: "A", Department: &dept, Year: 2024, Status: models.Enrolled},
	}

	f, err := BuildAdmissionListWorkbook(students)
	require.NoError(t, err)

	sheet := f.GetSheetName(0)
	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Karim", name)

	dep, err := f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Science", dep)
}
