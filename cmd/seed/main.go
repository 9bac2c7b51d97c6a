package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/auth"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/config"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/db"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/model"
	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/repository"
)

// SeedFile is the on-disk shape cmd/seed consumes: one admin account plus any
// number of stores.
type SeedFile struct {
	Admin struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Address  string `json:"address"`
		Password string `json:"password"`
	} `json:"admin"`
	Stores []struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
	} `json:"stores"`
}

func main() {
	seedPath := flag.String("file", "seed.json", "path to seed data file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Store{}, &model.Rating{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seed, err := loadSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)

	created, err := seedAdmin(ctx, userRepo, seed)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if created {
		log.Printf("Admin user created: %s", seed.Admin.Email)
	} else {
		log.Printf("Admin user already present: %s", seed.Admin.Email)
	}

	seeded, err := seedStores(ctx, storeRepo, seed)
	if err != nil {
		log.Fatalf("Failed to seed stores: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Stores created: %d", seeded)
}

// loadSeedFile reads and parses the seed data file.
func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if seed.Admin.Email == "" || seed.Admin.Password == "" {
		return nil, fmt.Errorf("seed file must define an admin email and password")
	}
	return &seed, nil
}

// seedAdmin creates the admin account unless one already exists for the email.
func seedAdmin(ctx context.Context, repo repository.UserRepository, seed *SeedFile) (bool, error) {
	if _, err := repo.FindByEmail(ctx, seed.Admin.Email); err == nil {
		return false, nil
	}

	hash, err := auth.HashPassword(seed.Admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Name:         seed.Admin.Name,
		Email:        seed.Admin.Email,
		Address:      seed.Admin.Address,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

// seedStores inserts the seed stores. Duplicate names are permitted, so the
// seeder is not idempotent for stores; run it once per fresh database.
func seedStores(ctx context.Context, repo repository.StoreRepository, seed *SeedFile) (int, error) {
	seeded := 0
	for _, s := range seed.Stores {
		store := &model.Store{
			Name:    s.Name,
			Email:   s.Email,
			Address: s.Address,
		}
		if err := repo.Create(ctx, store); err != nil {
			return seeded, fmt.Errorf("create store %q: %w", s.Name, err)
		}
		seeded++
	}
	return seeded, nil
}
