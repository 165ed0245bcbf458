package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/golang-cz/devslog"
	_ "github.com/lib/pq"
	"github.com/mishaello/re-blog/internal/backend"
	"github.com/mishaello/re-blog/internal/core"
	"github.com/mishaello/re-blog/internal/identity"
	"github.com/mishaello/re-blog/internal/storage"
	"github.com/mishaello/re-blog/internal/utils/databaseutils"
)

type application struct {
	config   config
	logger   *slog.Logger
	core     *core.Core
	identity *identity.Service
	wg       sync.WaitGroup
}

func main() {
	logger := configLogger()
	logger.Info("Starting application...")

	cfg := loadConfig()

	db, err := openDBConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Error opening database connection", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Database connection established successfully")

	bucket, err := storage.NewBucket(context.Background(), cfg.ImageBucket)
	if err != nil {
		logger.Error("Error creating storage client", "error", err)
		os.Exit(1)
	}
	defer bucket.Close()

	store := backend.New(db, logger)
	google := identity.NewGoogleConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL)
	identities := identity.NewService(store, google, logger)

	app := application{
		config:   cfg,
		logger:   logger,
		core:     core.New(store, bucket, databaseutils.NewSession(db), logger),
		identity: identities,
	}

	// Session changes are worth an audit line.
	app.identity.OnChange(func(ident *identity.Identity) {
		if ident == nil {
			logger.Info("session ended")
			return
		}
		logger.Info("session started", "identity_id", ident.ID, "provider", ident.Provider)
	})

	if err := app.serve(); err != nil {
		logger.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	return slog.New(handler)
}

func openDBConnection(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
