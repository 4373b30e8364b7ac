package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elevateconnect/backend/internal/app/controllers"
	"github.com/elevateconnect/backend/internal/app/migrations"
	"github.com/elevateconnect/backend/internal/app/repositories"
	"github.com/elevateconnect/backend/internal/app/routes"
	"github.com/elevateconnect/backend/internal/app/services"
	"github.com/elevateconnect/backend/internal/config"
	"github.com/elevateconnect/backend/internal/db"
	"github.com/elevateconnect/backend/internal/middleware"
	pkgAuth "github.com/elevateconnect/backend/internal/pkg/auth"
	"github.com/elevateconnect/backend/internal/pkg/email"
	"github.com/elevateconnect/backend/internal/pkg/filestorage"
	"github.com/elevateconnect/backend/internal/pkg/helpers"
	"github.com/elevateconnect/backend/internal/pkg/logger"
	"github.com/elevateconnect/backend/internal/pkg/tasks"
	"github.com/elevateconnect/backend/internal/seed"
)

// Dependencies holds the wired application graph
type Dependencies struct {
	Repos      *repositories.Repositories
	Services   *services.Services
	JWTService *pkgAuth.JWTService
	Dispatcher *tasks.Dispatcher

	AuthController         *controllers.AuthController
	DriveController        *controllers.DriveController
	TPOController          *controllers.TPOController
	ApplicationController  *controllers.ApplicationController
	ChatController         *controllers.ChatController
	QuestionController     *controllers.QuestionController
	NotificationController *controllers.NotificationController
	AnalyticsController    *controllers.AnalyticsController
	FileController         *controllers.FileController

	AuthMiddleware *middleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := "configs/config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the connection pool, runs migrations and
// synchronizes the admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := migrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.SyncAdminAccount(ctx, dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to synchronize admin account")
		dbPool.Close()
		return nil, fmt.Errorf("admin account sync failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(dbPool)

	// Chat media lives on local disk behind the /uploads static route
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		FromEmail: cfg.Mail.FromEmail,
	}, lgr)

	deps.Dispatcher = tasks.NewDispatcher(cfg.Worker.Count, cfg.Worker.QueueSize, lgr)

	deps.Services = services.NewServices(
		deps.Repos,
		deps.JWTService,
		emailService,
		deps.Dispatcher,
		cfg.Admin.Email,
		lgr,
	)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository, cfg.Admin.Email)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService, deps.Services.AnalyticsService)
	deps.DriveController = controllers.NewDriveController(deps.Services.DriveService)
	deps.TPOController = controllers.NewTPOController(
		deps.Services.DriveService,
		deps.Services.UserService,
		deps.Services.CourseService,
		deps.Services.AnalyticsService,
	)
	deps.ApplicationController = controllers.NewApplicationController(deps.Services.ApplicationService)
	deps.ChatController = controllers.NewChatController(deps.Services.ChatService, deps.FileStorage)
	deps.QuestionController = controllers.NewQuestionController(deps.Services.QuestionService)
	deps.NotificationController = controllers.NewNotificationController(deps.Services.NotificationService)
	deps.AnalyticsController = controllers.NewAnalyticsController(deps.Services.AnalyticsService)
	deps.FileController = controllers.NewFileController(deps.Services.AuthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(lgr), gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.DriveController,
		deps.TPOController,
		deps.ApplicationController,
		deps.ChatController,
		deps.QuestionController,
		deps.NotificationController,
		deps.AnalyticsController,
		deps.FileController,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
