package models

import (
	"time"
)

// Question defines a shared interview question based on the 'questions' table.
// HelpfulCount always equals the number of rows in question_likes for the question.
type Question struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	Company      string    `json:"company" db:"company"`
	Role         string    `json:"role" db:"role"`
	Question     string    `json:"question" db:"question"`
	Answer       string    `json:"answer" db:"answer"`
	Difficulty   string    `json:"difficulty" db:"difficulty"`
	Category     string    `json:"category" db:"category"`
	HelpfulCount int       `json:"helpfulCount" db:"helpful_count"`
	LikedByUsers []int64   `json:"likedByUsers"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	AuthorName string `json:"authorName,omitempty"` // Joined from users, no db tag
}
