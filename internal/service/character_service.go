package service

import (
	"context"
	"net/url"

	"rpchat/internal/models"
	"rpchat/internal/repository"
)

const defaultAvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

type CharacterService interface {
	Create(ctx context.Context, req models.CreateCharacterRequest) (*models.Character, error)
	GetByID(ctx context.Context, characterID int64) (*models.Character, error)
	List(ctx context.Context) ([]models.Character, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Character, error)
}

type characterService struct {
	characterRepo repository.CharacterRepository
}

func NewCharacterService(characterRepo repository.CharacterRepository) CharacterService {
	return &characterService{characterRepo: characterRepo}
}

func (s *characterService) Create(ctx context.Context, req models.CreateCharacterRequest) (*models.Character, error) {
	character := &models.Character{
		UserID:      req.UserID,
		Name:        req.Name,
		Avatar:      req.Avatar,
		Race:        req.Race,
		Class:       req.Class,
		Description: req.Description,
	}
	if character.Avatar == "" {
		character.Avatar = DefaultAvatarURL(character.Name)
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, translateError(err, "")
	}

	return character, nil
}

func (s *characterService) GetByID(ctx context.Context, characterID int64) (*models.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, translateError(err, "Character not found")
	}
	return character, nil
}

func (s *characterService) List(ctx context.Context) ([]models.Character, error) {
	return s.characterRepo.List(ctx)
}

func (s *characterService) ListByUserID(ctx context.Context, userID int64) ([]models.Character, error) {
	return s.characterRepo.ListByUserID(ctx, userID)
}

// DefaultAvatarURL returns a generated avatar seeded with the character name.
func DefaultAvatarURL(name string) string {
	return defaultAvatarBaseURL + url.QueryEscape(name)
}
