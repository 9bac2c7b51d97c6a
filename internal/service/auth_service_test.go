package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/auth"
	apperrors "github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/errors"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "Abcdef1!",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:     "explicit admin role",
			userName: "Admin User",
			email:    "admin@example.com",
			password: "Abcdef1!",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:          "missing name",
			userName:      "",
			email:         "test@example.com",
			password:      "Abcdef1!",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
		{
			name:          "weak password",
			userName:      "Test User",
			email:         "test@example.com",
			password:      "abcdefg!",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrWeakPassword,
		},
		{
			name:     "duplicate email",
			userName: "Test User",
			email:    "existing@example.com",
			password: "Abcdef1!",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			user, err := service.Register(context.Background(), tt.userName, tt.email, "", tt.password, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, tt.expectedRole, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := auth.HashPassword("Abcdef1!")

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "Abcdef1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           7,
					Name:         "Test User",
					Email:        "test@example.com",
					PasswordHash: hash,
					Role:         model.RoleUser,
				}, nil)
			},
		},
		{
			name:     "user not found",
			email:    "missing@example.com",
			password: "Abcdef1!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "Wrong999!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           7,
					Email:        "test@example.com",
					PasswordHash: hash,
					Role:         model.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, role, name, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RoleUser, role)
				assert.Equal(t, "Test User", name)

				// The issued token decodes back to the same user and role.
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(7), claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(mockRepo, jwtService)

	var stored *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.User)
			stored.ID = 11
		}).Return(nil)

	user, err := service.Register(context.Background(), "Round Trip", "rt@example.com", "", "Abcdef1!", "")
	assert.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "rt@example.com").Return(stored, nil)

	token, role, name, err := service.Login(context.Background(), "rt@example.com", "Abcdef1!")
	assert.NoError(t, err)
	assert.Equal(t, user.Role, role)
	assert.Equal(t, "Round Trip", name)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
}
