package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

const characterColumns = `id, user_id, name, avatar, race, class, description, created_at`

type characterRepository struct {
	db *sqlx.DB
}

func NewCharacterRepository(db *sqlx.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(ctx context.Context, character *models.Character) error {
	query := `
		INSERT INTO characters (user_id, name, avatar, race, class, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + characterColumns

	err := r.db.GetContext(ctx, character, query,
		character.UserID,
		character.Name,
		character.Avatar,
		character.Race,
		character.Class,
		character.Description,
	)
	if err != nil {
		return wrapError("failed to create character", err)
	}

	return nil
}

func (r *characterRepository) GetByID(ctx context.Context, characterID int64) (*models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE id = $1`

	var character models.Character
	if err := r.db.GetContext(ctx, &character, query, characterID); err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get character %d", characterID), err)
	}

	return &character, nil
}

func (r *characterRepository) List(ctx context.Context) ([]models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters ORDER BY created_at DESC`

	characters := []models.Character{}
	if err := r.db.SelectContext(ctx, &characters, query); err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	return characters, nil
}

func (r *characterRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE user_id = $1 ORDER BY created_at DESC`

	characters := []models.Character{}
	if err := r.db.SelectContext(ctx, &characters, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list characters of user %d: %w", userID, err)
	}

	return characters, nil
}
