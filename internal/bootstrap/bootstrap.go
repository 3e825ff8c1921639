package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ltlab/internship-portal/internal/app/controllers"
	appRepos "github.com/ltlab/internship-portal/internal/app/repositories"
	appRoutes "github.com/ltlab/internship-portal/internal/app/routes"
	"github.com/ltlab/internship-portal/internal/app/schema"
	appServices "github.com/ltlab/internship-portal/internal/app/services"
	"github.com/ltlab/internship-portal/internal/config"
	"github.com/ltlab/internship-portal/internal/db"
	appMiddleware "github.com/ltlab/internship-portal/internal/middleware"
	"github.com/ltlab/internship-portal/internal/pkg/audit"
	pkgAuth "github.com/ltlab/internship-portal/internal/pkg/auth"
	"github.com/ltlab/internship-portal/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ApplicationService    appServices.ApplicationService
	AuthService           appServices.AuthService
	PagesController       *appControllers.PagesController
	ApplicationController *appControllers.ApplicationController
	AuthController        *appControllers.AuthController
	AdminController       *appControllers.AdminController
	SessionMiddleware     *appMiddleware.SessionMiddleware
	SessionService        *pkgAuth.SessionService
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection and bootstraps the schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure schema and table exist before the first request
	bootstrapper := schema.NewBootstrapper(dbPool, cfg.Database.Schema)
	if err := bootstrapper.Bootstrap(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database schema bootstrap failed")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool, cfg.Database.Schema)

	recorder := audit.NewRecorder(lgr)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, recorder)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:  cfg.Session.Secret,
		Expiration: cfg.SessionExpiration(),
		Issuer:     cfg.Session.Issuer,
	})
	deps.AuthService = appServices.NewAuthService(cfg.Admin.Email, cfg.Admin.PasswordHash, deps.SessionService, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService)

	deps.PagesController = appControllers.NewPagesController()
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.SessionExpiration(), cfg.IsProduction(), lgr)
	deps.AdminController = appControllers.NewAdminController(deps.ApplicationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.LoadHTMLGlob(filepath.Join("web", "templates", "*.html"))

	appRoutes.SetupRouter(router,
		deps.PagesController,
		deps.ApplicationController,
		deps.AuthController,
		deps.AdminController,
		deps.SessionMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
