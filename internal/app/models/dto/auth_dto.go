package dto

import (
	"github.com/elevateconnect/backend/internal/app/models"
)

// SignupRequest represents a public registration request.
// TPO/ADMIN roles are refused by the service.
type SignupRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required"`
	Branch   *string     `json:"branch,omitempty"`
	CGPA     *float64    `json:"cgpa,omitempty"`
	Phone    *string     `json:"phone,omitempty"`
}

// LoginRequest represents a signin request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries profile field updates for the current user.
// Pointer fields are only applied when present.
type UpdateProfileRequest struct {
	Name         string   `json:"name"`
	Branch       *string  `json:"branch,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	StudentID    *string  `json:"studentId,omitempty"`
	ResumeData   *string  `json:"resumeData,omitempty"`
	Backlogs     *int     `json:"backlogs,omitempty"`
	Attendance   *float64 `json:"attendance,omitempty"`
	TenthMarks   *float64 `json:"tenthMarks,omitempty"`
	TwelfthMarks *float64 `json:"twelfthMarks,omitempty"`
	About        *string  `json:"about,omitempty"`
	Skills       *string  `json:"skills,omitempty"`
	Experience   *string  `json:"experience,omitempty"`
	Password     *string  `json:"password,omitempty"`
}

// JwtResponse is the signin response: token plus a profile snapshot.
// Token is empty on profile updates.
type JwtResponse struct {
	Token        string   `json:"token,omitempty"`
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Branch       *string  `json:"branch,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	StudentID    *string  `json:"studentId,omitempty"`
	ResumeData   *string  `json:"resumeData,omitempty"`
	Backlogs     *int     `json:"backlogs,omitempty"`
	Attendance   *float64 `json:"attendance,omitempty"`
	TenthMarks   *float64 `json:"tenthMarks,omitempty"`
	TwelfthMarks *float64 `json:"twelfthMarks,omitempty"`
}

// NewJwtResponse builds the signin/profile payload from a user record
func NewJwtResponse(token string, user *models.User) *JwtResponse {
	return &JwtResponse{
		Token:        token,
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		Branch:       user.Branch,
		CGPA:         user.CGPA,
		StudentID:    user.StudentID,
		ResumeData:   user.ResumeData,
		Backlogs:     user.Backlogs,
		Attendance:   user.Attendance,
		TenthMarks:   user.TenthMarks,
		TwelfthMarks: user.TwelfthMarks,
	}
}
