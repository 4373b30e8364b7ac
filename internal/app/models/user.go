package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// A single record covers every role; role-specific profile fields are nullable.
type User struct {
	ID            int64         `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	Password      string        `json:"-" db:"password"` // Hashed password, never serialized
	Role          Role          `json:"role" db:"role"`
	AccountStatus AccountStatus `json:"accountStatus" db:"account_status"`
	Branch        *string       `json:"branch,omitempty" db:"branch"`
	CGPA          *float64      `json:"cgpa,omitempty" db:"cgpa"`
	Phone         *string       `json:"phone,omitempty" db:"phone"`
	StudentID     *string       `json:"studentId,omitempty" db:"student_id"`
	ResumeData    *string       `json:"resumeData,omitempty" db:"resume_data"` // data URI
	Backlogs      *int          `json:"backlogs,omitempty" db:"backlogs"`
	Attendance    *float64      `json:"attendance,omitempty" db:"attendance"`
	TenthMarks    *float64      `json:"tenthMarks,omitempty" db:"tenth_marks"`
	TwelfthMarks  *float64      `json:"twelfthMarks,omitempty" db:"twelfth_marks"`
	About         *string       `json:"about,omitempty" db:"about"`
	Skills        *string       `json:"skills,omitempty" db:"skills"`
	Experience    *string       `json:"experience,omitempty" db:"experience"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
