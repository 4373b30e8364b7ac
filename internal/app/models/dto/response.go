package dto

// MessageResponse is the standard success envelope for message-only endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a MessageResponse
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// StatsResponse is the public landing-page counters payload
type StatsResponse struct {
	Drives         int64    `json:"drives"`
	Placed         int64    `json:"placed"`
	RecentPartners []string `json:"recentPartners"`
}

// StudentStatsResponse is the student dashboard counters payload.
// InterviewsScheduled is a placeholder pending interview scheduling support.
type StudentStatsResponse struct {
	TotalApplications   int64 `json:"totalApplications"`
	DrivesEligible      int64 `json:"drivesEligible"`
	InterviewsScheduled int64 `json:"interviewsScheduled"`
	OffersReceived      int64 `json:"offersReceived"`
}

// TPOStatsResponse is the TPO dashboard counters payload
type TPOStatsResponse struct {
	TotalStudents  int64  `json:"totalStudents"`
	PlacedStudents int64  `json:"placedStudents"`
	ActiveDrives   int64  `json:"activeDrives"`
	AvgPackage     string `json:"avgPackage"`
}
