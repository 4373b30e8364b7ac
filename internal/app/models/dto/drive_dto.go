package dto

// DriveRequest carries placement-drive fields for create and update
type DriveRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Package     string `json:"package" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Date        string `json:"date" binding:"required"`     // YYYY-MM-DD
	Deadline    string `json:"deadline" binding:"required"` // YYYY-MM-DD
	Description string `json:"description" binding:"required"`
	Eligibility string `json:"eligibility" binding:"required"`
	Type        string `json:"type" binding:"required"` // Full-time, Internship
}

// RejectDriveRequest carries the mandatory rejection reason
type RejectDriveRequest struct {
	Reason string `json:"reason"`
}
