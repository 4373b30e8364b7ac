package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// ChatService handles one-to-one messaging
type ChatService struct {
	chatRepo repositories.IChatRepository
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo repositories.IChatRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Send appends a message from the caller to the receiver. A message needs
// text or media; sending to yourself is refused.
func (s *ChatService) Send(ctx context.Context, senderID int64, req *dto.ChatRequest) (*models.Chat, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.ErrSelfChat
	}
	if strings.TrimSpace(req.Message) == "" && req.MediaURL == nil {
		return nil, apperrors.NewBadRequestError("Message cannot be empty")
	}

	if _, err := s.userRepo.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrReceiverNotFound
		}
		return nil, err
	}

	chat := &models.Chat{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		MediaURL:   req.MediaURL,
		MediaType:  req.MediaType,
	}

	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

// Conversation returns the full history with the partner and marks the
// partner's messages as read.
func (s *ChatService) Conversation(ctx context.Context, selfID, partnerID int64) ([]*models.Chat, error) {
	return s.chatRepo.GetConversation(ctx, selfID, partnerID)
}

// UnreadCounts returns unread message counts keyed by sender ID
func (s *ChatService) UnreadCounts(ctx context.Context, selfID int64) (map[int64]int64, error) {
	return s.chatRepo.UnreadCounts(ctx, selfID)
}

// RecentPartners returns the users the caller has talked to, most recent first
func (s *ChatService) RecentPartners(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	return s.chatRepo.RecentPartners(ctx, selfID)
}

// AlumniDirectory returns all alumni, existing conversations first
func (s *ChatService) AlumniDirectory(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	return s.chatRepo.AlumniDirectory(ctx, selfID)
}
