package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/petswipe/petswipe/internal/db"
)

// MessageRepository provides data access for direct messages and the
// seeded canned-reply set.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// CreateDirectMessage appends a user-to-user message. Rows are never
// mutated or deleted afterwards.
func (r *MessageRepository) CreateDirectMessage(
	ctx context.Context,
	senderID, recipientID, message string,
) error {
	msg := db.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     message,
	}
	return r.db.WithContext(ctx).Create(&msg).Error
}

// ListCannedReplies returns the contents of the seeded auto-reply set.
// The set is tiny and immutable, so callers pick a random entry
// themselves (keeps the query dialect-neutral).
func (r *MessageRepository) ListCannedReplies(ctx context.Context) ([]string, error) {
	var msgs []db.CannedMessage
	if err := r.db.WithContext(ctx).Order("id").Find(&msgs).Error; err != nil {
		return nil, err
	}
	contents := make([]string, 0, len(msgs))
	for _, m := range msgs {
		contents = append(contents, m.Content)
	}
	return contents, nil
}
