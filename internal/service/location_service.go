package service

import (
	"context"

	"rpchat/internal/models"
	"rpchat/internal/repository"
)

type LocationService interface {
	Create(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error)
	List(ctx context.Context) ([]models.LocationSummary, error)
}

type locationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) Create(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		UserID:      req.UserID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, translateError(err, "")
	}

	return location, nil
}

func (s *locationService) List(ctx context.Context) ([]models.LocationSummary, error) {
	return s.locationRepo.ListWithMessageCount(ctx)
}
