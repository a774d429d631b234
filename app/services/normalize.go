package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/Mutiur03/School-sub002/app/models"
)

// excelEpoch is the zero day of spreadsheet serial dates. Using Dec 30
// 1899 absorbs the historical leap-year quirk for serials from 1900-03-01
// onward, which covers every date this system handles.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeText trims a cell; the empty string becomes nil.
func NormalizeText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizePhone strips every non-digit character and keeps the last 10
// digits. Short or garbage input becomes nil; this never fails a row.
func NormalizePhone(s string) *string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 10 {
		return nil
	}
	d = d[len(d)-10:]
	return &d
}

// NormalizeDate accepts a spreadsheet serial-date number or a DD/MM/YYYY
// string and returns the ISO YYYY-MM-DD date. Unparseable input becomes
// nil; the row is still accepted and the missing date only becomes an
// error at persistence time.
func NormalizeDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial < 1 {
			return nil
		}
		iso := excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
		return &iso
	}

	if t, err := time.Parse("02/01/2006", s); err == nil {
		iso := t.Format("2006-01-02")
		return &iso
	}
	if t, err := time.Parse("2/1/2006", s); err == nil {
		iso := t.Format("2006-01-02")
		return &iso
	}

	return nil
}

// NormalizeBool maps "Yes"/"No" strings to booleans. The match is
// case-insensitive and anything that is not yes is false.
func NormalizeBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// NormalizeInt parses an integer cell, tolerating the "5.0" float
// renderings spreadsheets produce. Unparseable input becomes nil.
func NormalizeInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}

// cell returns the value at idx, tolerating the ragged rows spreadsheet
// parsers emit when trailing cells are empty.
func cell(row []string, idx int, ok bool) string {
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func cellAt(row []string, index map[string]int, name string) string {
	idx, ok := index[name]
	return cell(row, idx, ok)
}

// NormalizeStudentRows coerces validated import rows into canonical
// student records. The output has the same length and order as the input:
// a malformed row still produces a record with nil fields, to be caught by
// the explicit persistence-time validation.
func NormalizeStudentRows(header []string, rows [][]string) []models.StudentRecord {
	index := HeaderIndex(header)
	records := make([]models.StudentRecord, 0, len(rows))

	for _, row := range rows {
		rec := models.StudentRecord{
			Name:       NormalizeText(cellAt(row, index, "name")),
			Roll:       NormalizeInt(cellAt(row, index, "roll")),
			Class:      NormalizeInt(cellAt(row, index, "class")),
			Section:    NormalizeText(cellAt(row, index, "section")),
			Department: NormalizeText(cellAt(row, index, "department")),
			Year:       NormalizeInt(cellAt(row, index, "year")),
			Phone:      NormalizePhone(cellAt(row, index, "phone")),
			FatherName: NormalizeText(cellAt(row, index, "father_name")),
			MotherName: NormalizeText(cellAt(row, index, "mother_name")),
			DOB:        NormalizeDate(cellAt(row, index, "dob")),
			Gender:     NormalizeText(cellAt(row, index, "gender")),
			Address:    NormalizeText(cellAt(row, index, "address")),
			HasStipend: NormalizeBool(cellAt(row, index, "has_stipend")),
		}
		records = append(records, rec)
	}
	return records
}

// NormalizeSubjectRows coerces validated subject import rows. Department
// stays nil for subjects that apply to all departments.
func NormalizeSubjectRows(header []string, rows [][]string) []models.Subject {
	index := HeaderIndex(header)
	subjects := make([]models.Subject, 0, len(rows))

	intOrZero := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}

	for _, row := range rows {
		s := models.Subject{
			Department:    NormalizeText(cellAt(row, index, "department")),
			FullMark:      intOrZero(NormalizeInt(cellAt(row, index, "full_mark"))),
			CQMark:        intOrZero(NormalizeInt(cellAt(row, index, "cq_mark"))),
			MCQMark:       intOrZero(NormalizeInt(cellAt(row, index, "mcq_mark"))),
			PracticalMark: intOrZero(NormalizeInt(cellAt(row, index, "practical_mark"))),
		}
		if name := NormalizeText(cellAt(row, index, "name")); name != nil {
			s.Name = *name
		}
		if class := NormalizeInt(cellAt(row, index, "class")); class != nil {
			s.Class = *class
		}
		if year := NormalizeInt(cellAt(row, index, "year")); year != nil {
			s.Year = *year
		}
		subjects = append(subjects, s)
	}
	return subjects
}

// ValidateStudentRecord performs the persistence-time required-field check
// that normalization deliberately defers. It returns the list of missing
// field names for the row, empty when the record is insertable.
func ValidateStudentRecord(rec models.StudentRecord) []string {
	var missing []string
	if rec.Name == nil {
		missing = append(missing, "name")
	}
	if rec.Roll == nil {
		missing = append(missing, "roll")
	}
	if rec.Class == nil {
		missing = append(missing, "class")
	}
	if rec.Year == nil {
		missing = append(missing, "year")
	}
	return missing
}

// ValidateSubjectRecord is the subject-import counterpart: normalization
// zero-fills unparseable cells, so required fields are checked here before
// any row is inserted.
func ValidateSubjectRecord(s models.Subject) []string {
	var missing []string
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.Class == 0 {
		missing = append(missing, "class")
	}
	if s.FullMark == 0 {
		missing = append(missing, "full_mark")
	}
	if s.Year == 0 {
		missing = append(missing, "year")
	}
	return missing
}
