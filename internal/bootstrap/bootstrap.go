package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/okan/courseatlas/docs" // Import generated swagger docs
	appControllers "github.com/okan/courseatlas/internal/app/controllers"
	appMigrations "github.com/okan/courseatlas/internal/app/migrations"
	appRepos "github.com/okan/courseatlas/internal/app/repositories"
	appRoutes "github.com/okan/courseatlas/internal/app/routes"
	appServices "github.com/okan/courseatlas/internal/app/services"
	"github.com/okan/courseatlas/internal/config"
	"github.com/okan/courseatlas/internal/db"
	appMiddleware "github.com/okan/courseatlas/internal/middleware"
	pkgAuth "github.com/okan/courseatlas/internal/pkg/auth"
	"github.com/okan/courseatlas/internal/pkg/filestorage"
	"github.com/okan/courseatlas/internal/pkg/helpers"
	"github.com/okan/courseatlas/internal/pkg/logger"
	"github.com/okan/courseatlas/internal/pkg/rmp"
	"github.com/okan/courseatlas/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CourseService        appServices.CourseService
	SectionService       appServices.SectionService
	ProfessorService     appServices.ProfessorService
	RedditLinkService    appServices.RedditLinkService
	SyllabusService      appServices.SyllabusService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	ProfessorController  *appControllers.ProfessorController
	RedditLinkController *appControllers.RedditLinkController
	SyllabusController   *appControllers.SyllabusController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
	FileStorage          *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves uploads at <base-url>/uploads
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
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	ratingClient := rmp.NewClient(cfg.Ratings.BaseURL, helpers.ParseDuration(cfg.Ratings.RequestTimeout, 30*time.Second))

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.SBCRepository)
	deps.SectionService = appServices.NewSectionService(deps.Repos.CourseRepository, deps.Repos.SectionRepository)
	deps.ProfessorService = appServices.NewProfessorService(deps.Repos.ProfessorRepository, ratingClient)
	deps.RedditLinkService = appServices.NewRedditLinkService(deps.Repos.RedditLinkRepository)
	deps.SyllabusService = appServices.NewSyllabusService(
		deps.Repos.SyllabusRepository,
		deps.Repos.CourseRepository,
		deps.FileStorage,
		cfg.MaxUploadBytes(),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.SectionService)
	deps.ProfessorController = appControllers.NewProfessorController(deps.ProfessorService)
	deps.RedditLinkController = appControllers.NewRedditLinkController(deps.RedditLinkService)
	deps.SyllabusController = appControllers.NewSyllabusController(deps.SyllabusService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Serve uploaded files (syllabus PDFs)
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.ProfessorController,
		deps.RedditLinkController,
		deps.SyllabusController,
		deps.AuthMiddleware,
	)

	return router
}
