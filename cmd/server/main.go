package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourism-service/internal/domain/repository"
	"tourism-service/internal/infrastructure/config"
	"tourism-service/internal/infrastructure/oauth"
	"tourism-service/internal/infrastructure/persistence"
	"tourism-service/internal/infrastructure/router"
	"tourism-service/internal/interface/gmail"
	"tourism-service/internal/interface/handler"
	mongoRepo "tourism-service/internal/interface/repository"
	"tourism-service/internal/usecase"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"
	"tourism-service/templates"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const siteName = "India Heritage Tours"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	log.Info("Starting Tourism Service", "env", cfg.AppEnv, "version", cfg.AppVersion)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
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
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up repositories
	tourRepo, err := mongoRepo.NewMongoTourRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up tour repository", "error", err)
	}
	contactRepo, err := mongoRepo.NewMongoContactRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up contact repository", "error", err)
	}
	customTourRepo, err := mongoRepo.NewMongoCustomTourRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up custom tour repository", "error", err)
	}
	reviewRepo, err := mongoRepo.NewMongoReviewRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up review repository", "error", err)
	}
	adminRepo, err := mongoRepo.NewMongoAdminRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up admin repository", "error", err)
	}
	emailRepo, err := mongoRepo.NewMongoEmailRepository(ctx, db)
	if err != nil {
		log.Fatal("Failed to set up email log repository", "error", err)
	}

	// Audit trail lives in PostgreSQL when configured
	var auditRepo repository.AuditRepository = mongoRepo.NopAuditRepository{}
	if cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		if auditRepo, err = mongoRepo.NewGormAuditRepository(gormDB); err != nil {
			log.Fatal("Failed to set up audit repository", "error", err)
		}
	} else {
		log.Warn("POSTGRES_URI not set, audit trail disabled")
	}

	// Set up mail transport
	var sender repository.MailSender
	if cfg.MailEnabled() {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		sender, err = gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), cfg.MailFrom, log)
		if err != nil {
			log.Fatal("Failed to create Gmail service", "error", err)
		}
	} else {
		log.Warn("Gmail credentials not set, notification emails will only be logged")
		sender = gmail.NewLogSender(log)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("tourism", registry)

	// Set up use cases
	validator := usecase.NewValidator()
	auditor := usecase.NewAuditor(auditRepo, log)
	composer := templates.NewComposer(cfg.AdminEmail, siteName)
	orchestrator := usecase.NewEmailOrchestrator(sender, emailRepo, m, log, cfg.NotifyTimeout)

	tourService := usecase.NewTourService(tourRepo, auditor, validator, log)
	contactService := usecase.NewContactService(contactRepo, composer, orchestrator, auditor, validator, m, log)
	customTourService := usecase.NewCustomTourService(customTourRepo, composer, orchestrator, auditor, validator, m, log)
	reviewService := usecase.NewReviewService(reviewRepo, auditor, validator, m, log)
	authService := usecase.NewAuthService(adminRepo, auditor, validator, log, cfg.JWTSecret, cfg.JWTExpire)
	dashboardService := usecase.NewDashboardService(tourRepo, contactRepo, customTourRepo, reviewRepo, auditor)

	// Set up HTTP handlers
	responder := handler.NewResponder(cfg.IsProduction(), log)
	auth := handler.NewAuthMiddleware(authService, responder)

	r := router.NewRouter(router.Options{
		Version:     cfg.AppVersion,
		CORSOrigins: cfg.CORSOrigins,
		Gatherer:    registry,
		Metrics:     m,
		Logger:      log,
		Responder:   responder,
	}, auth.Protect())
	r.Register(handler.NewTourHandler(tourService, responder))
	r.Register(handler.NewContactHandler(contactService, responder))
	r.Register(handler.NewCustomTourHandler(customTourService, responder))
	r.Register(handler.NewReviewHandler(reviewService, responder))
	r.Register(handler.NewAdminHandler(authService, dashboardService, responder))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Let in-flight notification emails finish
	orchestrator.Wait()

	cancel()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Tourism Service stopped")
}
