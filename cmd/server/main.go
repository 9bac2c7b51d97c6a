package main

import (
	"log"
	"net/http"

	_ "github.com/AtharvaPatil999/Roxiler-coding-challenge/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/auth"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/cache"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/config"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/db"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/handler"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/router"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/service"
)

// @title Store Ratings API
// @version 1.0
// @description Store rating platform with user registration, store listing, and rating submission.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Rating{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	storeService := service.NewStoreService(storeRepo, ratingRepo, cacheClient)
	ratingService := service.NewRatingService(ratingRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		storeHandler,
		ratingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
