package services

import (
	"fmt"
	"strings"
)

// Required column contracts for spreadsheet imports. Header matching is
// case-insensitive and whitespace-trimmed; a missing column rejects the
// whole batch because downstream coercion assumes fixed column presence.
var (
	StudentColumns = []string{"name", "roll", "class", "section", "year"}
	SubjectColumns = []string{"name", "class", "full_mark", "year"}
	MarkColumns    = []string{"roll", "class", "subject", "cq_marks", "mcq_marks", "practical_marks"}
)

// MissingColumnsError lists every required column absent from an import
// sheet's header row.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValidateHeader checks the first row of an import sheet against the
// required-columns contract. On any missing column it returns a
// MissingColumnsError naming all of them; no rows pass through.
func ValidateHeader(header []string, required []string) error {
	present := make(map[string]bool, len(header))
	for _, cell := range header {
		present[strings.ToLower(strings.TrimSpace(cell))] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}

// HeaderIndex maps lowercased trimmed column names to their positions so
// the normalizer can address cells by name.
func HeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	return index
}
