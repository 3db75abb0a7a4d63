package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (character_id, location_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, character_id, location_id, content, created_at
	`

	err := r.db.GetContext(ctx, post, query, post.CharacterID, post.LocationID, post.Content)
	if err != nil {
		return wrapError("failed to create post", err)
	}

	return nil
}

// List returns the global feed, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.PostView, error) {
	query := `
		SELECT p.id, p.character_id, p.location_id, p.content, p.created_at,
		       c.name AS character_name,
		       c.avatar AS character_avatar,
		       l.name AS location_name
		FROM posts p
		JOIN characters c ON p.character_id = c.id
		JOIN locations l ON p.location_id = l.id
		ORDER BY p.created_at DESC
	`

	posts := []models.PostView{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}
