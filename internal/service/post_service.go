package service

import (
	"context"

	"rpchat/internal/models"
	"rpchat/internal/repository"
)

type PostService interface {
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	List(ctx context.Context) ([]models.PostView, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		CharacterID: req.CharacterID,
		LocationID:  req.LocationID,
		Content:     req.Content,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, translateError(err, "")
	}

	return post, nil
}

func (p *postService) List(ctx context.Context) ([]models.PostView, error) {
	return p.postRepo.List(ctx)
}
