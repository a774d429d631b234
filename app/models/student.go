package models

import "time"

// Student represents an enrolled student. Students are never hard-deleted
// once they have marks or attendance; the Available flag controls
// visibility instead.
type Student struct {
	ID         int           `json:"id"`
	Name       string        `json:"name" validate:"required"`
	Roll       int           `json:"roll" validate:"required,gt=0"`
	Class      int           `json:"class" validate:"required,gte=1,lte=10"`
	Section    string        `json:"section"`
	Department *string       `json:"department,omitempty"`
	Year       int           `json:"year" validate:"required"`
	Phone      *string       `json:"phone,omitempty"`
	FatherName *string       `json:"father_name,omitempty"`
	MotherName *string       `json:"mother_name,omitempty"`
	DOB        *string       `json:"dob,omitempty"`
	Gender     *string       `json:"gender,omitempty"`
	Address    *string       `json:"address,omitempty"`
	HasStipend bool          `json:"has_stipend"`
	Status     StudentStatus `json:"status"`
	Available  bool          `json:"available"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// StudentRecord is the canonical row shape produced by the import
// normalizer. Unparseable cells become nil rather than failing the row;
// required-field checks happen at persistence time.
type StudentRecord struct {
	Name       *string `json:"name"`
	Roll       *int    `json:"roll"`
	Class      *int    `json:"class"`
	Section    *string `json:"section"`
	Department *string `json:"department"`
	Year       *int    `json:"year"`
	Phone      *string `json:"phone"`
	FatherName *string `json:"father_name"`
	MotherName *string `json:"mother_name"`
	DOB        *string `json:"dob"`
	Gender     *string `json:"gender"`
	Address    *string `json:"address"`
	HasStipend bool    `json:"has_stipend"`
}
