package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads the first sheet of an uploaded .xlsx workbook into
// rows of cells. The first row is the header; callers run it through
// ValidateHeader before normalization. Legacy binary .xls is rejected up
// front: the parser only reads the OOXML format.
func ParseWorkbook(file multipart.File, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".xls" {
		return nil, errors.New("legacy .xls workbooks are not supported, re-save the file as .xlsx")
	}
	if ext != ".xlsx" {
		return nil, errors.New("unsupported file type, expected .xlsx")
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook is empty")
	}
	return rows, nil
}

// BuildAdmissionListWorkbook generates the admission-list export the
// dashboard downloads as a timestamped .xlsx attachment.
func BuildAdmissionListWorkbook(students []*models.Student) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Roll", "Name", "Class", "Section", "Department", "Year", "Phone", "Father's Name", "Mother's Name", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	for r, s := range students {
		values := []interface{}{
			s.Roll, s.Name, s.Class, s.Section, deref(s.Department), s.Year,
			deref(s.Phone), deref(s.FatherName), deref(s.MotherName), string(s.Status),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportFilename builds the timestamped attachment name for an export.
func ExportFilename(prefix string, year int) string {
	return fmt.Sprintf("%s_%d_%s.xlsx", prefix, year, time.Now().Format("20060102_150405"))
}
