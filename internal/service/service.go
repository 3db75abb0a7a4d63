package service

import (
	"go.uber.org/zap"

	"rpchat/internal/config"
	"rpchat/internal/repository"
	"rpchat/internal/storage"
)

type Service struct {
	Auth      AuthService
	Character CharacterService
	Location  LocationService
	Message   MessageService
	Post      PostService
	Avatar    AvatarService
	Tables    TablesService
}

// NewService wires every service to its repository. storage may be nil, in
// which case avatar uploads report themselves unavailable.
func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, cfg, log),
		Character: NewCharacterService(rep.Character),
		Location:  NewLocationService(rep.Location),
		Message:   NewMessageService(rep.Message),
		Post:      NewPostService(rep.Post),
		Avatar:    NewAvatarService(storage, cfg),
		Tables:    NewTablesService(rep.Tables),
	}
}
