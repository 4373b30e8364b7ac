package models

import (
	"time"
)

// Chat defines a one-to-one message based on the 'chats' table
type Chat struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Message    string    `json:"message" db:"message"`
	MediaURL   *string   `json:"mediaUrl,omitempty" db:"media_url"`
	MediaType  *string   `json:"mediaType,omitempty" db:"media_type"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
