package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elevateconnect/backend/internal/app/models"
	"github.com/elevateconnect/backend/internal/app/models/dto"
)

// IChatRepository defines the interface for chat database operations
type IChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	GetConversation(ctx context.Context, selfID, partnerID int64) ([]*models.Chat, error)
	UnreadCounts(ctx context.Context, selfID int64) (map[int64]int64, error)
	RecentPartners(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error)
	AlumniDirectory(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error)
}

// ChatRepository handles database operations for one-to-one chat messages
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts a new chat message
func (r *ChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (sender_id, receiver_id, message, media_url, media_type, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		chat.SenderID,
		chat.ReceiverID,
		chat.Message,
		chat.MediaURL,
		chat.MediaType,
	).Scan(&chat.ID, &chat.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating chat message: %w", err)
	}
	chat.IsRead = false

	return nil
}

// GetConversation retrieves the full message history between two users, oldest
// first. Reading a conversation marks the partner's messages as read; the
// update and the read run in one transaction so the returned rows reflect the
// new read state.
func (r *ChatRepository) GetConversation(ctx context.Context, selfID, partnerID int64) ([]*models.Chat, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE chats SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE
	`, selfID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("error marking conversation read: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT id, sender_id, receiver_id, message, media_url, media_type, is_read, created_at
		FROM chats
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`, selfID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}

	chats, err := collectChats(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing conversation read: %w", err)
	}

	return chats, nil
}

// UnreadCounts returns how many unread messages each sender has waiting for
// the user, keyed by sender ID. Senders with nothing unread are absent.
func (r *ChatRepository) UnreadCounts(ctx context.Context, selfID int64) (map[int64]int64, error) {
	query := `
		SELECT sender_id, COUNT(*)
		FROM chats
		WHERE receiver_id = $1 AND is_read = FALSE
		GROUP BY sender_id
	`

	rows, err := r.db.Query(ctx, query, selfID)
	if err != nil {
		return nil, fmt.Errorf("error counting unread messages: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var senderID, count int64
		if err := rows.Scan(&senderID, &count); err != nil {
			return nil, fmt.Errorf("error scanning unread count: %w", err)
		}
		counts[senderID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unread counts: %w", err)
	}

	return counts, nil
}

// RecentPartners retrieves the users the caller has exchanged messages with,
// most recent conversation first.
func (r *ChatRepository) RecentPartners(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, MAX(c.created_at) AS last_message_at
		FROM chats c
		JOIN users u ON u.id = CASE WHEN c.sender_id = $1 THEN c.receiver_id ELSE c.sender_id END
		WHERE c.sender_id = $1 OR c.receiver_id = $1
		GROUP BY u.id, u.name, u.email, u.role
		ORDER BY last_message_at DESC
	`

	rows, err := r.db.Query(ctx, query, selfID)
	if err != nil {
		return nil, fmt.Errorf("error listing chat partners: %w", err)
	}
	defer rows.Close()

	return collectPartners(rows)
}

// AlumniDirectory retrieves every active alumni user. Alumni the caller has
// already talked to come first, by most recent contact, then the rest
// alphabetically.
func (r *ChatRepository) AlumniDirectory(ctx context.Context, selfID int64) ([]*dto.ChatPartner, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, MAX(c.created_at) AS last_message_at
		FROM users u
		LEFT JOIN chats c ON (c.sender_id = u.id AND c.receiver_id = $1)
			OR (c.receiver_id = u.id AND c.sender_id = $1)
		WHERE u.role = $2 AND u.id <> $1 AND u.account_status = $3
		GROUP BY u.id, u.name, u.email, u.role
		ORDER BY last_message_at DESC NULLS LAST, u.name ASC
	`

	rows, err := r.db.Query(ctx, query, selfID, models.RoleAlumni, models.AccountActive)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni directory: %w", err)
	}
	defer rows.Close()

	return collectPartners(rows)
}

func collectChats(rows pgx.Rows) ([]*models.Chat, error) {
	defer rows.Close()

	var chats []*models.Chat
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.SenderID,
			&chat.ReceiverID,
			&chat.Message,
			&chat.MediaURL,
			&chat.MediaType,
			&chat.IsRead,
			&chat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat message: %w", err)
		}
		chats = append(chats, &chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}

	return chats, nil
}

func collectPartners(rows pgx.Rows) ([]*dto.ChatPartner, error) {
	var partners []*dto.ChatPartner
	for rows.Next() {
		var partner dto.ChatPartner
		err := rows.Scan(
			&partner.ID,
			&partner.Name,
			&partner.Email,
			&partner.Role,
			&partner.LastMessageAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat partner: %w", err)
		}
		partners = append(partners, &partner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat partners: %w", err)
	}

	return partners, nil
}
