package service

import (
	"context"
	"errors"

	"github.com/shoplite/shoplite-go/internal/crypto"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
	"github.com/shoplite/shoplite-go/internal/token"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService handles registration, login, and profile reads.
type AuthService struct {
	users  repository.Users
	tokens *token.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.Users, tokens *token.Store) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new account and returns a session token. The
// request is assumed to have passed the registration ruleset already.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.AuthResponse{}, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return model.AuthResponse{}, ErrUsernameTaken
		}
		return model.AuthResponse{}, err
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: tok, User: user.Response()}, nil
}

// Login authenticates credentials and returns a fresh session token,
// invalidating any previously issued one for the same user.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Token: tok, User: user.Response()}, nil
}

// GetUser retrieves a user by id as a redacted projection.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return user.Response(), nil
}

// ListUsers returns redacted projections of every account. The admin
// check is the calling handler's responsibility.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	return s.users.List(ctx)
}
