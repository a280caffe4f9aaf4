package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	authadapter "github.com/algotrack/algotrack-backend/internal/auth"

	"github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	catalogrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/catalog"
	progressrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/progress"
	userrepo "github.com/algotrack/algotrack-backend/internal/adapter/postgres/user"
	"github.com/algotrack/algotrack-backend/internal/config"
	authsvc "github.com/algotrack/algotrack-backend/internal/service/auth"
	catalogsvc "github.com/algotrack/algotrack-backend/internal/service/catalog"
	progresssvc "github.com/algotrack/algotrack-backend/internal/service/progress"
	sheetsvc "github.com/algotrack/algotrack-backend/internal/service/sheet"
	statssvc "github.com/algotrack/algotrack-backend/internal/service/stats"
	"github.com/algotrack/algotrack-backend/internal/transport/middleware"
	"github.com/algotrack/algotrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	catalog := catalogrepo.New(pool)
	progress := progressrepo.New(pool)

	jwtManager := authadapter.NewJWTManager(
		cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	catalogService := catalogsvc.NewService(logger, catalog)
	progressService := progresssvc.NewService(logger, progress, catalog)
	sheetService := sheetsvc.NewService(logger, catalog, progress)
	statsService := statssvc.NewService(logger, catalog, progress)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(
		logger,
		cfg.CORS,
		jwtManager,
		limiter,
		cfg.Server.AuthRateLimit,
		rest.Handlers{
			Health:   rest.NewHealthHandler(pool, BuildVersion()),
			Auth:     rest.NewAuthHandler(authService, logger),
			Catalog:  rest.NewCatalogHandler(catalogService, logger),
			Progress: rest.NewProgressHandler(progressService, logger),
			Sheet:    rest.NewSheetHandler(sheetService, logger),
			Stats:    rest.NewStatsHandler(statsService, logger),
		},
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// migrate applies pending goose migrations using database/sql (goose
// requires *sql.DB, not a pgx pool).
func migrate(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
