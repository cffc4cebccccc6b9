package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"school-backend/internal/media"
	"school-backend/internal/schools"
	"school-backend/internal/services/health"
	"school-backend/internal/shared/config"
	"school-backend/internal/shared/server"
	"school-backend/internal/shared/storage/db"
	"school-backend/internal/shared/storage/object"
	localstore "school-backend/internal/shared/storage/object/local"
	s3store "school-backend/internal/shared/storage/object/s3"
)

const mediaFolder = "schoolImages"

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Uploader       *media.Uploader
	SchoolsRepo    schools.SchoolsRepo
	SchoolsService *schools.Service
	SchoolsHandler *schools.Handler
	MediaHandler   *media.Handler
	Health         *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo schools.SchoolsRepo
	if sqlDB != nil {
		repo = &schools.PGRepo{DB: sqlDB}
	} else {
		repo = schools.NewMemoryRepo()
	}

	uploader := &media.Uploader{
		Store:    store,
		BaseURL:  mediaBaseURL(cfg),
		Folder:   mediaFolder,
		MaxBytes: cfg.MaxImageBytes,
	}

	app := &App{
		Config:         cfg,
		DB:             sqlDB,
		Store:          store,
		Uploader:       uploader,
		SchoolsRepo:    repo,
		SchoolsService: schools.NewService(repo, uploader),
		MediaHandler:   media.NewHandler(store),
		Health:         health.NewService(),
	}
	app.SchoolsHandler = schools.NewHandler(app.SchoolsService, cfg.MaxImageBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:  app.Config,
		Health:  app.Health,
		Schools: app.SchoolsHandler,
		Media:   app.MediaHandler,
	})

	return app, nil
}

// Close releases shared resources. Safe to call once after the server stops.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			log.Printf("bootstrap: close database: %v", err)
		}
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// mediaBaseURL resolves the public prefix for stored image URLs. An explicit
// MEDIA_BASE_URL always wins; otherwise S3 objects get a bucket URL and the
// local store is served through this process's /media route.
func mediaBaseURL(cfg config.Config) string {
	if base := strings.TrimSpace(cfg.MediaBaseURL); base != "" {
		return base
	}
	if cfg.ObjectStoreType == "s3" {
		region := cfg.AWSRegion
		if region == "" {
			region = "us-east-1"
		}
		base := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, region)
		if prefix := strings.Trim(cfg.S3Prefix, "/"); prefix != "" {
			base += "/" + prefix
		}
		return base
	}
	return fmt.Sprintf("http://localhost:%s/media", strings.TrimPrefix(cfg.Port, ":"))
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
