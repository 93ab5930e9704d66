// @title           PlanPulse API
// @version         1.0
// @description     Collaborative task board API with user accounts, shared boards, and tasks

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "planpulse-api/docs" // Swagger docs import

	"planpulse-api/internal/client"
	"planpulse-api/internal/config"
	"planpulse-api/internal/database"
	"planpulse-api/internal/email"
	"planpulse-api/internal/job"
	"planpulse-api/internal/metrics"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/router"
	"planpulse-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting PlanPulse API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database (app starts even when the first attempt fails)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected successfully")
		database.SetDB(db)

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize Redis (optional; reset-request throttling degrades without it)
	if err := database.InitRedis(cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, reset-request throttling disabled", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize image store
	var imageStore client.ImageStore
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, profile image features may be limited", zap.Error(err))
		} else {
			imageStore = s3Client
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, profile image features disabled")
	}
	if imageStore == nil {
		imageStore = client.NewMockImageStore()
	}

	// Initialize email sender
	emailSender := email.NewSMTPSender(email.Config{
		Host:             cfg.SMTP.Host,
		Port:             cfg.SMTP.Port,
		Username:         cfg.SMTP.Username,
		Password:         cfg.SMTP.Password,
		From:             cfg.SMTP.From,
		ResetPasswordURL: cfg.SMTP.ResetPasswordURL,
	})

	// Schedule the reset-token cleanup job. Redemption-time expiry checks
	// stay authoritative when the database was unreachable at startup.
	if db != nil {
		scheduler := cron.New()
		cleanupJob := job.NewTokenCleanupJob(repository.NewResetTokenRepository(db), m, logger)
		if _, err := scheduler.AddJob(cfg.App.TokenCleanupSchedule, cleanupJob); err != nil {
			logger.Warn("Failed to schedule token cleanup job", zap.Error(err))
		} else {
			scheduler.Start()
			defer scheduler.Stop()
			logger.Info("Token cleanup job scheduled",
				zap.String("schedule", cfg.App.TokenCleanupSchedule))
		}
	} else {
		logger.Warn("Token cleanup job not scheduled, database unavailable at startup")
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		RedisClient:    database.GetRedis(),
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        m,
		ImageStore:     imageStore,
		EmailSender:    emailSender,
		UserService: service.UserServiceConfig{
			JWTSecret:            cfg.JWT.Secret,
			JWTTTL:               cfg.JWT.TTL,
			ResetRequestCooldown: cfg.App.ResetRequestCooldown,
		},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("PlanPulse API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
