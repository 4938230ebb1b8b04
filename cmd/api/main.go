package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/memory"
	"newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/snapshot"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/pkg/config"
	"newsdesk/internal/repository"

	artUC "newsdesk/internal/usecase/article"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hexport "newsdesk/internal/handler/http/export"
	"newsdesk/internal/handler/http/middleware"
	"newsdesk/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repo, database := initStore(cfg, logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	handler := setupServer(cfg, repo, database, logger)
	runServer(cfg, handler, logger)
}

// initStore selects the persistence backend: PostgreSQL when DATABASE_URL is
// set, otherwise the in-memory store rehydrated from the JSON snapshot file.
func initStore(cfg config.Config, logger *slog.Logger) (repository.ArticleRepository, *sql.DB) {
	if cfg.DatabaseURL != "" {
		database, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("using postgres store")
		return postgres.NewArticleRepo(database), database
	}

	snap := snapshot.New(cfg.SnapshotPath)
	seed, err := snap.Load()
	if err != nil {
		logger.Error("failed to load snapshot", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("using in-memory store",
		slog.String("snapshot", cfg.SnapshotPath),
		slog.Int("seeded_articles", len(seed)))
	metrics.SetArticlesTotal(len(seed))

	persist := snap.Hook(logger)
	repo := memory.NewArticleRepo(
		memory.WithSeed(seed),
		memory.WithHook(func(ctx context.Context, articles []*entity.Article) {
			metrics.SetArticlesTotal(len(articles))
			persist(ctx, articles)
		}),
	)
	return repo, nil
}

// setupServer wires the routes and wraps them in the middleware chain.
func setupServer(cfg config.Config, repo repository.ArticleRepository, database *sql.DB, logger *slog.Logger) http.Handler {
	svc := &artUC.Service{Repo: repo}

	mux := http.NewServeMux()
	harticle.Register(mux, svc, logger)
	hexport.Register(mux, svc, cfg.SiteURL, logger)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	// Apply in reverse order (innermost to outermost):
	// request ID, rate limit, recovery, logging, body limit, metrics.
	chain := http.Handler(mux)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		chain = limiter.Limit(chain)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(cfg config.Config, handler http.Handler, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
