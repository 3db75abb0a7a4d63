package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rpchat/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserBySessionToken(ctx context.Context, token string) (*models.User, error)
	UpdateSessionToken(ctx context.Context, userID int64, token string) error
}

type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	GetByID(ctx context.Context, characterID int64) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Character, error)
}

type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	ListWithMessageCount(ctx context.Context) ([]models.LocationSummary, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.MessageView, error)
	ListByLocationID(ctx context.Context, locationID int64) ([]models.MessageView, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context) ([]models.PostView, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User      UserRepository
	Character CharacterRepository
	Location  LocationRepository
	Message   MessageRepository
	Post      PostRepository
	Tables    TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:      NewUserRepository(db),
		Character: NewCharacterRepository(db),
		Location:  NewLocationRepository(db),
		Message:   NewMessageRepository(db),
		Post:      NewPostRepository(db),
		Tables:    NewTablesRepository(db),
	}
}
