package authservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertrack/internal/domain"
	"github.com/GlebRadaev/ordertrack/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

// Unknown usernames are checked against this fixed hash so that both login
// failures cost one key derivation.
const (
	dummySalt = "5f0c2d9a7e31b4c86a1d0e9f3b72c415"
	dummyHash = "9b1d3e6f0a2c4b8d7e5f1a3c6b9d0e2f4a7c1b3d5e8f0a2c4b6d9e1f3a5c7b80"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
	}
}

// Register stores a new user. Username uniqueness is enforced by storage.
func (s *Service) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !role.Valid() {
		zap.L().Info("rejected registration with unknown role", zap.String("role", string(role)))
		return nil, domain.ErrInvalidRole
	}

	salt, err := s.hashService.GenerateSalt()
	if err != nil {
		zap.L().Error("can't generate salt: ", zap.Error(err))
		return nil, err
	}
	hashedPassword, err := s.hashService.HashPassword(password, salt)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		Role:         role,
		PasswordHash: hashedPassword,
		Salt:         salt,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			zap.L().Info("user already exists", zap.String("username", username))
			return nil, err
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	zap.L().Info("user successfully registered", zap.String("username", username), zap.String("role", string(role)))
	return newUser, nil
}

// Authenticate returns ErrInvalidCredentials both for unknown users and for
// wrong passwords.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.hashService.ComparePassword(dummyHash, dummySalt, password)
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hashService.ComparePassword(user.PasswordHash, user.Salt, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}
