package models

import (
	"time"
)

type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	SessionToken *string    `json:"session_token,omitempty" db:"session_token"`
	LastLogin    *time.Time `json:"-" db:"last_login"`
	CreatedAt    time.Time  `json:"-" db:"created_at"`
}

type Character struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Avatar      string    `json:"avatar" db:"avatar"`
	Race        string    `json:"race" db:"race"`
	Class       string    `json:"class" db:"class"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Location struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// LocationSummary is a location as shown in the room list.
type LocationSummary struct {
	Location
	MessageCount int64 `json:"message_count" db:"message_count"`
}

type Message struct {
	ID          int64     `json:"id" db:"id"`
	CharacterID int64     `json:"character_id" db:"character_id"`
	LocationID  int64     `json:"location_id" db:"location_id"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MessageView is a message enriched with its author's display fields.
type MessageView struct {
	Message
	CharacterName   string `json:"character_name" db:"character_name"`
	CharacterAvatar string `json:"character_avatar" db:"character_avatar"`
}

type Post struct {
	ID          int64     `json:"id" db:"id"`
	CharacterID int64     `json:"character_id" db:"character_id"`
	LocationID  int64     `json:"location_id" db:"location_id"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PostView is a feed entry: the post plus author and location display fields.
type PostView struct {
	Post
	CharacterName   string `json:"character_name" db:"character_name"`
	CharacterAvatar string `json:"character_avatar" db:"character_avatar"`
	LocationName    string `json:"location_name" db:"location_name"`
}
