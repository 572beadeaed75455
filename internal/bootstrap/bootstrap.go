// Package bootstrap wires configuration, database, repositories, services,
// controllers and the gin router into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/canyuksel/llmassess/internal/app/controllers"
	appMigrations "github.com/canyuksel/llmassess/internal/app/migrations"
	appRepos "github.com/canyuksel/llmassess/internal/app/repositories"
	appRoutes "github.com/canyuksel/llmassess/internal/app/routes"
	appServices "github.com/canyuksel/llmassess/internal/app/services"
	"github.com/canyuksel/llmassess/internal/config"
	"github.com/canyuksel/llmassess/internal/db"
	appMiddleware "github.com/canyuksel/llmassess/internal/middleware"
	"github.com/canyuksel/llmassess/internal/pkg/logger"
	"github.com/canyuksel/llmassess/internal/pkg/monitoring"
	"github.com/canyuksel/llmassess/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StdQuestionService     appServices.StdQuestionService
	SrcQuestionService     appServices.SrcQuestionService
	CandidateAnswerService appServices.CandidateAnswerService
	DatasetService         appServices.DatasetService
	AssessmentService      appServices.AssessmentService
	TaxonomyService        appServices.TaxonomyService
	ImportService          appServices.ImportService

	StdQuestionController     *appControllers.StdQuestionController
	SrcQuestionController     *appControllers.SrcQuestionController
	CandidateAnswerController *appControllers.CandidateAnswerController
	DatasetController         *appControllers.DatasetController
	AssessmentController      *appControllers.AssessmentController
	TaxonomyController        *appControllers.TaxonomyController
	DataController            *appControllers.DataController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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
// seeds baseline data.
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best-effort, startup continues without the defaults.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StdQuestionService = appServices.NewStdQuestionService(deps.Repos.StdQuestionRepository)
	deps.SrcQuestionService = appServices.NewSrcQuestionService(deps.Repos.SrcQuestionRepository)
	deps.CandidateAnswerService = appServices.NewCandidateAnswerService(deps.Repos.CandidateAnswerRepository)
	deps.DatasetService = appServices.NewDatasetService(deps.Repos.DatasetRepository)
	deps.AssessmentService = appServices.NewAssessmentService(deps.Repos.AssessmentRepository)
	deps.TaxonomyService = appServices.NewTaxonomyService(deps.Repos.TagRepository, deps.Repos.CategoryRepository)
	deps.ImportService = appServices.NewImportService(deps.Repos.ImportRepository, deps.Repos.SrcQuestionRepository)

	deps.StdQuestionController = appControllers.NewStdQuestionController(deps.StdQuestionService)
	deps.SrcQuestionController = appControllers.NewSrcQuestionController(deps.SrcQuestionService)
	deps.CandidateAnswerController = appControllers.NewCandidateAnswerController(deps.CandidateAnswerService)
	deps.DatasetController = appControllers.NewDatasetController(deps.DatasetService)
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.TaxonomyController = appControllers.NewTaxonomyController(deps.TaxonomyService)
	deps.DataController = appControllers.NewDataController(deps.ImportService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	monitoring.Init()
	router.Use(monitoring.MetricsMiddleware())
	router.GET("/metrics", monitoring.PrometheusHandler())

	appRoutes.SetupRouter(router,
		deps.StdQuestionController,
		deps.SrcQuestionController,
		deps.CandidateAnswerController,
		deps.DatasetController,
		deps.AssessmentController,
		deps.TaxonomyController,
		deps.DataController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
