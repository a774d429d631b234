package models

import "time"

// Exam represents a scheduled exam for one or more class levels in a year.
// Visible controls whether results are published to the public result
// viewer; it is toggled independently of edits.
type Exam struct {
	ID         int       `json:"id"`
	ExamName   string    `json:"exam_name" validate:"required"`
	ExamYear   int       `json:"exam_year" validate:"required"`
	Levels     []int     `json:"levels" validate:"required,min=1,dive,gte=1,lte=10"`
	StartDate  *string   `json:"start_date,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"`
	ResultDate *string   `json:"result_date,omitempty"`
	Visible    bool      `json:"visible"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExamName is a configured valid exam name. The set of valid names is data,
// not a hardcoded enumeration: the source admin screens disagreed on the
// list, so both regular and terminal names live in one settings table.
type ExamName struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
}
