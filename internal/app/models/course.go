package models

// Course defines a course based on the 'courses' table.
// Assignment to students goes through the user_courses join table.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Credits     int    `json:"credits" db:"credits"`
	Semester    int    `json:"semester" db:"semester"`
}
