package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/auth"
	apperrors "github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/errors"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, address, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token, role, name string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. The insert is attempted
// optimistically; a duplicate email is detected from the store's uniqueness
// violation rather than a pre-check.
func (s *authService) Register(ctx context.Context, name, email, address, password, role string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrMissingFields
	}
	if !auth.ValidatePassword(password) {
		return nil, apperrors.ErrWeakPassword
	}
	if role == "" {
		role = model.RoleUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Address:      address,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a session token bound to the user's
// id and role.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", "", apperrors.ErrUserNotFound
		}
		return "", "", "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", "", "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", "", "", fmt.Errorf("generate token: %w", err)
	}

	return token, user.Role, user.Name, nil
}
