package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hostel-pms/config"
	deliveryHttp "go-hostel-pms/internal/delivery/http"
	"go-hostel-pms/internal/delivery/http/handler"
	"go-hostel-pms/internal/delivery/http/middleware"
	"go-hostel-pms/internal/infrastructure/cache"
	"go-hostel-pms/internal/infrastructure/database"
	"go-hostel-pms/internal/repository"
	"go-hostel-pms/internal/service"
	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/jwt"
	"go-hostel-pms/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	bedRepo := repository.NewBedRepository()
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()
	transactionRepo := repository.NewTransactionRepository()
	historyRepo := repository.NewBedHistoryRepository()
	externalRepo := repository.NewExternalReservationRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	availability := service.NewAvailabilityService(log, bookingRepo, externalRepo)
	ledger := service.NewLedgerService(log, transactionRepo)
	history := service.NewHistoryService(log, historyRepo)
	pricing := service.NewPricingEngine(cfg.Pricing.DefaultNightlyRate)
	notifier := service.NewLogNotificationDispatcher(log)
	statusBoard := service.NewStatusBoardService(redisClient, log)

	// Warm the status board cache from the database
	if beds, err := bedRepo.FindAll(db, ""); err != nil {
		log.Warnf("Failed to load beds for status board: %+v", err)
	} else if err := statusBoard.Rebuild(context.Background(), beds); err != nil {
		log.Warnf("Failed to rebuild status board: %+v", err)
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	bedUsecase := usecase.NewBedUsecase(db, log, bedRepo, history, statusBoard)
	frontDeskUsecase := usecase.NewFrontDeskUsecase(db, log, bedRepo, guestRepo, bookingRepo, availability, ledger, history, pricing, notifier, statusBoard)
	guestUsecase := usecase.NewGuestUsecase(db, log, guestRepo, bookingRepo, ledger)
	transactionUsecase := usecase.NewTransactionUsecase(db, log, bookingRepo, ledger)
	historyUsecase := usecase.NewHistoryUsecase(db, log, bedRepo, history)
	externalUsecase := usecase.NewExternalReservationUsecase(db, log, bedRepo, externalRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	bedHandler := handler.NewBedHandler(bedUsecase, customValidator)
	frontDeskHandler := handler.NewFrontDeskHandler(frontDeskUsecase, customValidator)
	guestHandler := handler.NewGuestHandler(guestUsecase, customValidator)
	transactionHandler := handler.NewTransactionHandler(transactionUsecase, customValidator)
	historyHandler := handler.NewHistoryHandler(historyUsecase)
	externalResHandler := handler.NewExternalReservationHandler(externalUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, bedHandler, frontDeskHandler, guestHandler, transactionHandler, historyHandler, externalResHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
