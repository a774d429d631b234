package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestNormalizeText(t *testing.T) {
	assert.Nil(t, NormalizeText(""))
	assert.Nil(t, NormalizeText("   "))
	assert.Equal(t, strptr("Rahim Uddin"), NormalizeText("  Rahim Uddin "))
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *string
	}{
		{"international prefix keeps last 10", "+880 1712-345678", strptr("1712345678")},
		{"plain 11 digit local number", "01712345678", strptr("1712345678")},
		{"exactly 10 digits", "1712345678", strptr("1712345678")},
		{"formatting stripped", "(171) 234-5678", strptr("1712345678")},
		{"too short becomes nil", "12345", nil},
		{"garbage becomes nil", "n/a", nil},
		{"empty becomes nil", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.in))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Run("DD/MM/YYYY", func(t *testing.T) {
		assert.Equal(t, strptr("2010-05-21"), NormalizeDate("21/05/2010"))
	})

	t.Run("single digit day and month", func(t *testing.T) {
		assert.Equal(t, strptr("2010-05-01"), NormalizeDate("1/5/2010"))
	})

	t.Run("spreadsheet serial number", func(t *testing.T) {
		// 43831 is 2020-01-01 in the 1900 date system
		assert.Equal(t, strptr("2020-01-01"), NormalizeDate("43831"))
		assert.Equal(t, strptr("2023-03-15"), NormalizeDate("45000"))
	})

	t.Run("invalid input becomes nil, not an error", func(t *testing.T) {
		assert.Nil(t, NormalizeDate("31/02/2010"))
		assert.Nil(t, NormalizeDate("2010-05-21")) // ISO input is not a source format
		assert.Nil(t, NormalizeDate("soon"))
		assert.Nil(t, NormalizeDate(""))
		assert.Nil(t, NormalizeDate("0"))
	})
}

func TestNormalizeBool(t *testing.T) {
	assert.True(t, NormalizeBool("Yes"))
	assert.True(t, NormalizeBool(" yes "))
	assert.True(t, NormalizeBool("YES"))
	assert.False(t, NormalizeBool("No"))
	assert.False(t, NormalizeBool("true")) // only yes/no is recognized
	assert.False(t, NormalizeBool(""))
}

func TestNormalizeInt(t *testing.T) {
	five := 5
	assert.Equal(t, &five, NormalizeInt("5"))
	assert.Equal(t, &five, NormalizeInt(" 5.0 "))
	assert.Nil(t, NormalizeInt("five"))
	assert.Nil(t, NormalizeInt(""))
}

func TestNormalizeStudentRows(t *testing.T) {
	header := []string{"Name", "Roll", "Class", "Section", "Year", "Phone", "DOB", "Department", "Has_Stipend"}

	t.Run("rows keep length and order, malformed rows survive with nil fields", func(t *testing.T) {
		rows := [][]string{
			{"Karim", "1", "9", "A", "2024", "+8801712345678", "21/05/2010", "Science", "Yes"},
			{"", "oops", "9", "B", "2024", "123", "someday", "", "No"},
			{"Salma", "2", "9"}, // ragged short row
		}

		records := NormalizeStudentRows(header, rows)
		require.Len(t, records, 3)

		assert.Equal(t, strptr("Karim"), records[0].Name)
		assert.Equal(t, strptr("1712345678"), records[0].Phone)
		assert.Equal(t, strptr("2010-05-21"), records[0].DOB)
		assert.Equal(t, strptr("Science"), records[0].Department)
		assert.True(t, records[0].HasStipend)

		assert.Nil(t, records[1].Name)
		assert.Nil(t, records[1].Roll)
		assert.Nil(t, records[1].Phone)
		assert.Nil(t, records[1].DOB)
		assert.Nil(t, records[1].Department)
		assert.False(t, records[1].HasStipend)

		assert.Equal(t, strptr("Salma"), records[2].Name)
		assert.Nil(t, records[2].Year)
	})
}

func TestValidateStudentRecord(t *testing.T) {
	header := []string{"name", "roll", "class", "section", "year"}
	records := NormalizeStudentRows(header, [][]string{
		{"Karim", "1", "9", "A", "2024"},
		{"", "oops", "9", "B", "2024"},
	})

	assert.Empty(t, ValidateStudentRecord(records[0]))
	assert.Equal(t, []string{"name", "roll"}, ValidateStudentRecord(records[1]))
}

func TestValidateSubjectRecord(t *testing.T) {
	header := []string{"name", "class", "full_mark", "year"}
	subjects := NormalizeSubjectRows(header, [][]string{
		{"Physics", "9", "100", "2024"},
		{"", "oops", "", "2024"},
	})

	assert.Empty(t, ValidateSubjectRecord(subjects[0]))
	// A garbage row zero-fills every cell and must not be insertable.
	assert.Equal(t, []string{"name", "class", "full_mark"}, ValidateSubjectRecord(subjects[1]))
}
