package dto

// QuestionRequest carries a new interview question
type QuestionRequest struct {
	Company    string `json:"company" binding:"required"`
	Role       string `json:"role"`
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

// QuestionFilter holds optional listing filters
type QuestionFilter struct {
	Company    string `form:"company"`
	Difficulty string `form:"difficulty"`
	Category   string `form:"category"`
}
