package models

// Auth actions accepted in AuthRequest.Action.
const (
	ActionRegister = "register"
	ActionLogin    = "login"
)

// AuthRequest is the body of POST /api/auth. Action selects which of the
// remaining fields are required.
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateCharacterRequest struct {
	UserID      int64  `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Avatar      string `json:"avatar"`
	Race        string `json:"race" validate:"required"`
	Class       string `json:"class" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateLocationRequest struct {
	UserID      int64  `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateMessageRequest struct {
	CharacterID int64  `json:"character_id" validate:"required"`
	LocationID  int64  `json:"location_id" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

type CreatePostRequest struct {
	CharacterID int64  `json:"character_id" validate:"required"`
	LocationID  int64  `json:"location_id" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

// SessionResponse is returned by register and login.
type SessionResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	SessionToken string `json:"session_token"`
}

// UserResponse is returned when a session token is resolved.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AvatarResponse struct {
	URL string `json:"url"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}
