package service

import (
	"context"
	"errors"
	"time"

	"planhub/internal/model"
	"planhub/internal/repository"
	"planhub/pkg/auth"
)

// Registration and login failure modes surfaced to the handler layer.
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
)

// UserService handles registration and authentication
type UserService struct {
	repo   repository.IUserRepository
	tokens *auth.TokenManager
}

// NewUserService creates a new user service
func NewUserService(repo repository.IUserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a user with a hashed password and issues a token.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if existing, err := s.repo.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, err := s.repo.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashed,
		FullName:       req.FullName,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.tokenResponse(created)
}

// Login verifies credentials and issues a token.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return s.tokenResponse(user)
}

// Authenticate resolves a verified token subject into an active user.
func (s *UserService) Authenticate(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

func (s *UserService) tokenResponse(user *model.User) (*model.TokenResponse, error) {
	token, err := s.tokens.Generate(user.Username, user.Email)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: model.UserProfile{
			Username: user.Username,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}
