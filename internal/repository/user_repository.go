package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts the user and fills in the server-assigned id, timestamps
// and session token from the RETURNING clause.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, session_token, last_login)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, username, email, password_hash, session_token, last_login, created_at
	`

	err := r.db.GetContext(ctx, user, query, user.Username, user.Email, user.PasswordHash, user.SessionToken)
	if err != nil {
		return wrapError("failed to create user", err)
	}

	return nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	return exists, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `
		SELECT id, username, email, password_hash, session_token, last_login, created_at
		FROM users WHERE username = $1
	`

	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, wrapError(fmt.Sprintf("failed to get user %q", username), err)
	}

	return &user, nil
}

func (r *userRepository) GetUserBySessionToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User

	query := `
		SELECT id, username, email, password_hash, session_token, last_login, created_at
		FROM users WHERE session_token = $1
	`

	if err := r.db.GetContext(ctx, &user, query, token); err != nil {
		return nil, wrapError("failed to get user by session token", err)
	}

	return &user, nil
}

// UpdateSessionToken replaces the stored token, which invalidates the previous
// one, and stamps last_login.
func (r *userRepository) UpdateSessionToken(ctx context.Context, userID int64, token string) error {
	query := `
		UPDATE users
		SET session_token = $1, last_login = CURRENT_TIMESTAMP
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return wrapError("failed to update session token", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	return nil
}
