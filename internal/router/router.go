package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"planpulse-api/internal/client"
	"planpulse-api/internal/email"
	"planpulse-api/internal/handler"
	"planpulse-api/internal/metrics"
	"planpulse-api/internal/middleware"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/service"
)

// Config holds all dependencies the router wires together
type Config struct {
	DB             *gorm.DB
	RedisClient    *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	ImageStore     client.ImageStore
	EmailSender    email.Sender
	UserService    service.UserServiceConfig
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	collaboratorRepo := repository.NewCollaboratorRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	resetTokenRepo := repository.NewResetTokenRepository(cfg.DB)

	// Services
	userService := service.NewUserService(
		userRepo, boardRepo, collaboratorRepo, taskRepo, resetTokenRepo,
		cfg.ImageStore, cfg.EmailSender, cfg.RedisClient,
		cfg.UserService, cfg.Metrics, cfg.Logger,
	)
	boardService := service.NewBoardService(
		boardRepo, collaboratorRepo, taskRepo, userRepo,
		cfg.Metrics, cfg.Logger,
	)
	taskService := service.NewTaskService(
		taskRepo, boardRepo, collaboratorRepo, cfg.Logger,
	)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, cfg.Logger)
	userHandler := handler.NewUserHandler(userService, cfg.Logger)
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.RedisClient)

	// Health and observability endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/logout", middleware.Auth(cfg.JWTSecret), authHandler.Logout)
		}

		users := api.Group("/users")
		users.Use(middleware.Auth(cfg.JWTSecret))
		{
			users.GET("/profile", userHandler.GetProfile)
			users.GET("/by-email/:email", userHandler.GetUserByEmail)
			users.GET("/profile-image", userHandler.GetProfileImage)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.DELETE("/profile", userHandler.DeleteAccount)
			users.PUT("/profile-image", userHandler.UpdateProfileImage)
			users.PUT("/reset-password", userHandler.ChangePassword)
		}

		boards := api.Group("/boards")
		boards.Use(middleware.Auth(cfg.JWTSecret))
		{
			boards.GET("/all", boardHandler.GetBoards)
			boards.POST("/create-board", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/add-user/:boardId/:identifier", boardHandler.AddCollaborator)
			boards.GET("/collaborators/:boardId", boardHandler.GetCollaborators)
			boards.POST("/add-task/:boardId", boardHandler.AddTask)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.Auth(cfg.JWTSecret))
		{
			tasks.GET("/:taskId", taskHandler.GetTask)
			tasks.GET("/board/:boardId", taskHandler.GetTasksByBoard)
			tasks.PUT("/:taskId/status", taskHandler.UpdateStatus)
			tasks.PUT("/:taskId/time", taskHandler.TrackTime)
		}
	}

	return r
}
