package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"rpchat/internal/config"
	"rpchat/internal/metrics"
	"rpchat/internal/models"
	"rpchat/internal/repository"
)

const sessionTokenBytes = 32

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.SessionResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionResponse, error)
	Resolve(ctx context.Context, token string) (*models.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.SessionResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("Username or email already exists", nil)
	}

	passwordHash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		SessionToken: &token,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// the pre-check above can lose a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.NewConflictError("Username or email already exists", err)
		}
		return nil, err
	}

	metrics.SessionsIssued.WithLabelValues(models.ActionRegister).Inc()
	s.log.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	return &models.SessionResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		SessionToken: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.SessionResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordDigest(req.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateSessionToken(ctx, user.ID, token); err != nil {
		return nil, err
	}

	metrics.SessionsIssued.WithLabelValues(models.ActionLogin).Inc()

	return &models.SessionResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		SessionToken: token,
	}, nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*models.UserResponse, error) {
	if token == "" {
		return nil, models.NewUnauthorizedError("No session token provided")
	}

	user, err := s.userRepo.GetUserBySessionToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, models.NewUnauthorizedError("Invalid session")
		}
		return nil, err
	}

	return &models.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), s.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// passwordDigest condenses the whole password into 44 bytes, since bcrypt
// rejects input over 72 bytes and would otherwise compare only a prefix.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// generateSessionToken returns an opaque, unguessable bearer token.
func generateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
