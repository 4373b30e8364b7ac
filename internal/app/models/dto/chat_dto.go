package dto

import (
	"time"
)

// ChatRequest represents an outgoing chat message
type ChatRequest struct {
	ReceiverID int64   `json:"receiverId" binding:"required"`
	Message    string  `json:"message"`
	MediaURL   *string `json:"mediaUrl,omitempty"`
	MediaType  *string `json:"mediaType,omitempty"`
}

// ChatPartner describes a user the caller can chat with, ordered by recency
// of contact in directory listings.
type ChatPartner struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
}

// UploadResponse returns the served URL of an uploaded blob
type UploadResponse struct {
	URL string `json:"url"`
}
