package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/mailer"
	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/files"
)

// App holds shared dependencies constructed once at process start.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Files    *files.Store
	Repo     resumes.Repo
	Renderer *render.PDFRenderer
	Mailer   *mailer.Mailer
	Service  *resumes.Service
	Handler  *resumes.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := files.New(cfg.GeneratedDir)

	renderer, err := render.New(store, cfg.ChromePath)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := &resumes.Service{
		Repo:     repo,
		Renderer: renderer,
		Files:    store,
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Files:    store,
		Repo:     repo,
		Renderer: renderer,
		Service:  svc,
	}

	if m, err := mailer.New(cfg, store); err != nil {
		log.Printf("bootstrap: mail transport not configured, emails disabled: %v", err)
	} else {
		app.Mailer = m
		svc.Notifier = m
	}

	app.Handler = resumes.NewHandler(svc)
	app.Router = server.NewRouter(cfg, app.Handler, store.Dir())

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, errDatabaseRequired
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
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
