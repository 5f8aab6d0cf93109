package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/drivingschool/admin/internal/app/controllers"
	appRepos "github.com/drivingschool/admin/internal/app/repositories"
	appRoutes "github.com/drivingschool/admin/internal/app/routes"
	appServices "github.com/drivingschool/admin/internal/app/services"
	"github.com/drivingschool/admin/internal/app/views"
	"github.com/drivingschool/admin/internal/config"
	appMiddleware "github.com/drivingschool/admin/internal/middleware"
	"github.com/drivingschool/admin/internal/pkg/apiclient"
	"github.com/drivingschool/admin/internal/pkg/logger"
	"github.com/drivingschool/admin/internal/pkg/validation"
	"github.com/drivingschool/admin/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Client       *apiclient.Client
	Repos        *appRepos.Repositories
	SessionStore session.Store
	Controllers  appRoutes.Controllers
	Logger       zerolog.Logger
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

// SetupSessionStore opens the configured session store
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.Store, error) {
	switch cfg.Session.Store {
	case config.StoreRedis:
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Connecting to Redis session store...")
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
			TTL:       cfg.Session.TTL,
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to Redis")
			return nil, err
		}
		lgr.Info().Msg("Redis session store ready.")
		return store, nil
	default:
		lgr.Info().Dur("ttl", cfg.Session.TTL).Msg("Using in-memory session store")
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
}

// BuildDependencies initializes the backend client, repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store session.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, SessionStore: store}

	deps.Client = apiclient.New(apiclient.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, nil)
	deps.Repos = appRepos.NewRepositories(deps.Client)

	enrollmentService := appServices.NewEnrollmentService(
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		validation.New(),
		time.Now,
	)
	teacherService := appServices.NewTeacherService(deps.Repos.TeacherRepository)
	studentService := appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.TeacherRepository)
	documentService := appServices.NewDocumentService(deps.Repos.StudentRepository, deps.Repos.DocumentRepository)

	deps.Controllers = appRoutes.Controllers{
		Enrollment: appControllers.NewEnrollmentController(enrollmentService),
		Teacher:    appControllers.NewTeacherController(teacherService),
		Student:    appControllers.NewStudentController(studentService),
		Document:   appControllers.NewDocumentController(documentService),
		Health:     appControllers.NewHealthController(cfg.Backend.BaseURL, cfg.Session.Store),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	tmpl, err := views.Load(deps.Repos.DocumentRepository.FileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.Sessions(deps.SessionStore, appMiddleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	}))
	router.Use(appMiddleware.RequestLogger())
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupRouter(router, deps.Controllers)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "page not found")
	})

	return router, nil
}
