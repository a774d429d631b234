package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeader(t *testing.T) {
	t.Run("accepts exact header", func(t *testing.T) {
		header := []string{"name", "roll", "class", "section", "year"}
		assert.NoError(t, ValidateHeader(header, StudentColumns))
	})

	t.Run("matching is case-insensitive and trims whitespace", func(t *testing.T) {
		header := []string{" Name ", "ROLL", "Class", "Section ", "YEAR"}
		assert.NoError(t, ValidateHeader(header, StudentColumns))
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		header := []string{"name", "roll", "class", "section", "year", "remarks", "house"}
		assert.NoError(t, ValidateHeader(header, StudentColumns))
	})

	t.Run("missing column rejects the whole batch", func(t *testing.T) {
		header := []string{"name", "class", "section", "year"}
		err := ValidateHeader(header, StudentColumns)
		require.Error(t, err)

		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"roll"}, missing.Missing)
		assert.Contains(t, err.Error(), "roll")
	})

	t.Run("every missing column is enumerated", func(t *testing.T) {
		header := []string{"name"}
		err := ValidateHeader(header, StudentColumns)
		require.Error(t, err)

		var missing *MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"roll", "class", "section", "year"}, missing.Missing)
	})
}

func TestHeaderIndex(t *testing.T) {
	index := HeaderIndex([]string{" Name ", "Roll", "", "roll", "Year"})

	assert.Equal(t, 0, index["name"])
	assert.Equal(t, 4, index["year"])
	// first occurrence wins for duplicates, empty cells are skipped
	assert.Equal(t, 1, index["roll"])
	_, ok := index[""]
	assert.False(t, ok)
}
