package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/pkg/apperrors"
)

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	CreateForUsers(ctx context.Context, userIDs []int64, message string, notificationType models.NotificationType) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a single notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, type, is_read)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		notification.Message,
		notification.Type,
	).Scan(&notification.ID, &notification.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// CreateForUsers inserts the same notification for each user in one batch
func (r *NotificationRepository) CreateForUsers(ctx context.Context, userIDs []int64, message string, notificationType models.NotificationType) error {
	if len(userIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO notifications (user_id, message, type, is_read) VALUES ($1, $2, $3, FALSE)`
	for _, userID := range userIDs {
		batch.Queue(query, userID, message, notificationType)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range userIDs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error batch-creating notifications: %w", err)
		}
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.Type,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, &notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead flags a single notification as read. The user filter stops users
// from touching notifications that are not theirs.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}

	return nil
}

// CountUnread counts a user's unread notifications
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}
