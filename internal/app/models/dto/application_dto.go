package dto

// UpdateApplicationStatusRequest sets a new application status
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
