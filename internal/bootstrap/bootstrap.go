package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/sagarshinde/studyhub/internal/app/auth"
	appControllers "github.com/sagarshinde/studyhub/internal/app/controllers"
	appRepos "github.com/sagarshinde/studyhub/internal/app/repositories"
	appRoutes "github.com/sagarshinde/studyhub/internal/app/routes"
	appServices "github.com/sagarshinde/studyhub/internal/app/services"
	"github.com/sagarshinde/studyhub/internal/config"
	"github.com/sagarshinde/studyhub/internal/db"
	appMiddleware "github.com/sagarshinde/studyhub/internal/middleware"
	"github.com/sagarshinde/studyhub/internal/pkg/assistant"
	pkgAuth "github.com/sagarshinde/studyhub/internal/pkg/auth"
	"github.com/sagarshinde/studyhub/internal/pkg/filestorage"
	"github.com/sagarshinde/studyhub/internal/pkg/helpers"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
	"github.com/sagarshinde/studyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ResourceService  appServices.ResourceService
	AuthService      appServices.AuthService
	AssistantService appServices.AssistantService

	ResourceController  *appControllers.ResourceController
	AuthController      *appControllers.AuthController
	AssistantController *appControllers.AssistantController
	TaxonomyController  *appControllers.TaxonomyController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	CatalogRepo    *appRepos.CatalogRepository
	SessionRepo    *appRepos.SessionRepository
	FileStorage    *filestorage.LocalStorage
	Store          kvstore.Store
	Logger         zerolog.Logger
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

// SetupStore selects and connects the key/value backend holding the
// catalog and session documents.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (kvstore.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "file":
		store, err := kvstore.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		lgr.Info().Str("path", cfg.Storage.Path).Msg("Using file storage backend")
		return store, func() {}, nil

	case "memory":
		lgr.Warn().Msg("Using in-memory storage backend, data will not survive restarts")
		return kvstore.NewMemory(), func() {}, nil

	case "postgres":
		pool, err := db.NewPostgresPool(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		store, err := kvstore.NewPostgresStore(ctx, pool, cfg.Storage.Table)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to initialize postgres store: %w", err)
		}
		lgr.Info().Str("table", cfg.Storage.Table).Msg("Using postgres storage backend")
		return store, pool.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store, err := kvstore.NewRedisStore(ctx, client, cfg.Redis.Prefix)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis storage backend")
		return store, func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store kvstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store}

	deps.CatalogRepo = appRepos.NewCatalogRepository(store)
	deps.SessionRepo = appRepos.NewSessionRepository(store)

	if err := seed.Resources(context.Background(), deps.CatalogRepo); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed catalog, proceeding anyway...")
	}

	// Configure baseURL to match the static file serving endpoint
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	identityProvider := appAuth.NewStaticProvider(appAuth.StaticProviderConfig{
		AdminName:         cfg.Accounts.Admin.Name,
		AdminEmail:        cfg.Accounts.Admin.Email,
		AdminPasswordHash: cfg.Accounts.Admin.PasswordHash,
	})

	assistantClient := assistant.NewGeminiClient(assistant.GeminiConfig{
		APIKey:  cfg.Assistant.APIKey,
		BaseURL: cfg.Assistant.BaseURL,
		Model:   cfg.Assistant.Model,
		Timeout: helpers.ParseDuration(cfg.Assistant.Timeout, 30*time.Second),
	})
	if !assistantClient.Configured() {
		lgr.Warn().Msg("Assistant API key not set, helper replies will be unavailable")
	}

	deps.ResourceService = appServices.NewResourceService(deps.CatalogRepo, deps.FileStorage, cfg.Upload.MaxSizeMB*1024*1024)
	deps.AuthService = appServices.NewAuthService(deps.SessionRepo, identityProvider, deps.JWTService)
	deps.AssistantService = appServices.NewAssistantService(assistantClient)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.SessionRepo)

	deps.ResourceController = appControllers.NewResourceController(deps.ResourceService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AssistantController = appControllers.NewAssistantController(deps.AssistantService)
	deps.TaxonomyController = appControllers.NewTaxonomyController(cfg)

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

	// Serve uploaded files
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRoutes(router, &appRoutes.Controllers{
		Resource:  deps.ResourceController,
		Auth:      deps.AuthController,
		Assistant: deps.AssistantController,
		Taxonomy:  deps.TaxonomyController,
	}, deps.AuthMiddleware)

	return router
}
