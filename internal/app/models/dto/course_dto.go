package dto

// CourseRequest carries course fields for create and update
type CourseRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
	Semester    int    `json:"semester"`
}
