package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/repositories"
)

// NotificationService handles the per-user notification feed
type NotificationService struct {
	notificationRepo repositories.INotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.INotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List retrieves the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

// MarkRead flags one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllRead flags all of the caller's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount counts the caller's unread notifications
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}
