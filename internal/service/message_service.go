package service

import (
	"context"

	"rpchat/internal/metrics"
	"rpchat/internal/models"
	"rpchat/internal/repository"
)

type MessageService interface {
	Create(ctx context.Context, req models.CreateMessageRequest) (*models.MessageView, error)
	ListByLocationID(ctx context.Context, locationID int64) ([]models.MessageView, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) Create(ctx context.Context, req models.CreateMessageRequest) (*models.MessageView, error) {
	message := &models.Message{
		CharacterID: req.CharacterID,
		LocationID:  req.LocationID,
		Content:     req.Content,
	}

	view, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, translateError(err, "")
	}

	metrics.MessagesCreated.Inc()
	return view, nil
}

func (s *messageService) ListByLocationID(ctx context.Context, locationID int64) ([]models.MessageView, error) {
	return s.messageRepo.ListByLocationID(ctx, locationID)
}
