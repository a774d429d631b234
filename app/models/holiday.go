package models

import "time"

// Holiday is an inclusive date range on the school calendar. IsOptional
// marks holidays whose exact date depends on the lunar calendar.
type Holiday struct {
	ID          int       `json:"id"`
	Title       string    `json:"title" validate:"required"`
	StartDate   string    `json:"start_date" validate:"required"`
	EndDate     string    `json:"end_date" validate:"required"`
	Description string    `json:"description"`
	IsOptional  bool      `json:"is_optional"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
