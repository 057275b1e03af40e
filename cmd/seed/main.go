package main

import (
	"context"
	"errors"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/infrastructure/config"
	"tourism-service/internal/infrastructure/persistence"
	mongoRepo "tourism-service/internal/interface/repository"
	"tourism-service/internal/usecase"
	"tourism-service/pkg/logger"
)

// Creates the first super-admin from SEED_ADMIN_* so the back office can be reached.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := persistence.NewMongoClient(ctx, persistence.MongoOptions{
		URI:            cfg.MongoURI,
		Username:       cfg.MongoUser,
		Password:       cfg.MongoPassword,
		AppName:        "tourism-service",
		ConnectTimeout: cfg.MongoTimeout,
		MaxPoolSize:    cfg.MongoMaxPool,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	adminRepo, err := mongoRepo.NewMongoAdminRepository(ctx, persistence.GetDatabase(mongoClient, cfg.MongoDB))
	if err != nil {
		log.Fatal("Failed to set up admin repository", "error", err)
	}

	auth := usecase.NewAuthService(
		adminRepo,
		usecase.NewAuditor(mongoRepo.NopAuditRepository{}, log),
		usecase.NewValidator(),
		log,
		cfg.JWTSecret,
		cfg.JWTExpire,
	)

	admin, err := auth.CreateAdmin(ctx, usecase.Actor{AdminID: "seed"}, usecase.AdminInput{
		Username: cfg.SeedAdminUsername,
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
		Role:     entity.RoleSuperAdmin,
	})

	var conflict *usecase.ConflictError
	switch {
	case errors.As(err, &conflict):
		log.Info("Admin already exists, nothing to do", "username", cfg.SeedAdminUsername)
	case err != nil:
		log.Fatal("Failed to seed admin", "error", err)
	default:
		log.Info("Seeded admin", "adminID", admin.ID.Hex(), "username", admin.Username)
	}
}
