package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/auth"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/cache"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/config"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/handler"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/service"
)

// In-memory repository stubs so the full route stack can run without a database.

type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

type stubStoreRepo struct{}

func (stubStoreRepo) Create(ctx context.Context, store *model.Store) error { return nil }
func (stubStoreRepo) FindByID(ctx context.Context, id uint) (*model.Store, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubStoreRepo) ListByName(ctx context.Context) ([]model.Store, error) { return nil, nil }

type stubRatingRepo struct{}

func (stubRatingRepo) Upsert(ctx context.Context, rating *model.Rating) (bool, error) {
	return true, nil
}
func (stubRatingRepo) ListByStore(ctx context.Context, storeID uint) ([]model.Rating, error) {
	return nil, nil
}
func (stubRatingRepo) SummaryByStore(ctx context.Context, storeID uint) (*repository.RatingSummary, error) {
	return &repository.RatingSummary{}, nil
}

func newTestRouter(t *testing.T, secret string) *echo.Echo {
	t.Helper()

	cfg := &config.Config{JWTSecret: secret}
	jwtService := auth.NewJWTService(secret)

	var noCache *cache.Client
	authHandler := handler.NewAuthHandler(service.NewAuthService(stubUserRepo{}, jwtService))
	storeHandler := handler.NewStoreHandler(service.NewStoreService(stubStoreRepo{}, stubRatingRepo{}, noCache))
	ratingHandler := handler.NewRatingHandler(service.NewRatingService(stubRatingRepo{}))

	e := echo.New()
	Register(e, cfg, authHandler, storeHandler, ratingHandler)
	return e
}

func TestCreateStore_AdminGate(t *testing.T) {
	const secret = "test-secret"
	jwtService := auth.NewJWTService(secret)

	adminToken, err := jwtService.GenerateToken(1, model.RoleAdmin)
	assert.NoError(t, err)
	userToken, err := jwtService.GenerateToken(2, model.RoleUser)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "admin token creates store",
			authorization:  "Bearer " + adminToken,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "user token is forbidden",
			authorization:  "Bearer " + userToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing token is rejected",
			authorization:  "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "garbage token is unauthorized",
			authorization:  "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	e := newTestRouter(t, secret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/stores",
				strings.NewReader(`{"name":"Fresh Mart"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authorization != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorization)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCreateStore_WrongSecretRejected(t *testing.T) {
	token, err := auth.NewJWTService("other-secret").GenerateToken(1, model.RoleAdmin)
	assert.NoError(t, err)

	e := newTestRouter(t, "test-secret")

	req := httptest.NewRequest(http.MethodPost, "/api/stores",
		strings.NewReader(`{"name":"Fresh Mart"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
