package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts the message and reads the author's display fields in the same
// transaction, so the returned view can be rendered without another request.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) (*models.MessageView, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO messages (character_id, location_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, character_id, location_id, content, created_at
	`

	view := models.MessageView{}
	err = tx.GetContext(ctx, &view.Message, insertQuery, message.CharacterID, message.LocationID, message.Content)
	if err != nil {
		return nil, wrapError("failed to create message", err)
	}

	authorQuery := `
		SELECT c.name AS character_name, c.avatar AS character_avatar
		FROM characters c WHERE c.id = $1
	`

	row := tx.QueryRowxContext(ctx, authorQuery, message.CharacterID)
	if err := row.Scan(&view.CharacterName, &view.CharacterAvatar); err != nil {
		return nil, wrapError(fmt.Sprintf("failed to load character %d", message.CharacterID), err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}

	*message = view.Message
	return &view, nil
}

// ListByLocationID returns the conversation of one location in chronological
// order.
func (r *messageRepository) ListByLocationID(ctx context.Context, locationID int64) ([]models.MessageView, error) {
	query := `
		SELECT m.id, m.character_id, m.location_id, m.content, m.created_at,
		       c.name AS character_name,
		       c.avatar AS character_avatar
		FROM messages m
		JOIN characters c ON m.character_id = c.id
		WHERE m.location_id = $1
		ORDER BY m.created_at ASC, m.id ASC
	`

	messages := []models.MessageView{}
	if err := r.db.SelectContext(ctx, &messages, query, locationID); err != nil {
		return nil, fmt.Errorf("failed to list messages of location %d: %w", locationID, err)
	}

	return messages, nil
}
