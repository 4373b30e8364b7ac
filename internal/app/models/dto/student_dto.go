package dto

import (
	"github.com/elevateconnect/backend/internal/app/models"
)

// StudentDetailsResponse is the TPO view of a single student: the profile
// plus their applications and assigned courses.
type StudentDetailsResponse struct {
	Student      *models.User          `json:"student"`
	Applications []*models.Application `json:"applications"`
	Courses      []*models.Course      `json:"courses"`
}
