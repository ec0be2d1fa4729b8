package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"empdir/internal/domain/auth"
	"empdir/internal/domain/directory"
	"empdir/internal/platform/config"
	"empdir/internal/platform/db"
	"empdir/internal/platform/format"
	"empdir/internal/platform/metrics"
	"empdir/internal/platform/source"
	"empdir/internal/transport/http/api"
	analyticshandler "empdir/internal/transport/http/handlers/analytics"
	authhandler "empdir/internal/transport/http/handlers/auth"
	employeeshandler "empdir/internal/transport/http/handlers/employees"
	tabledatahandler "empdir/internal/transport/http/handlers/tabledata"
	"empdir/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

func Run() {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	app, err := New(context.Background(), cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("employee directory listening", "addr", cfg.Addr, "source", cfg.DataSource)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set; using an insecure development secret")
		cfg.JWTSecret = "dev-insecure-secret"
	}

	app := &App{Config: cfg}
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}

	fixture, err := source.NewFixture()
	if err != nil {
		return nil, err
	}
	src, err := app.openSource(ctx, fixture)
	if err != nil {
		app.Close()
		return nil, err
	}
	if app.Metrics != nil {
		src = source.Observe(src, app.Metrics)
	}

	provider, err := auth.NewStaticProvider(cfg.AuthUsername, cfg.AuthPassword)
	if err != nil {
		app.Close()
		return nil, err
	}

	svc := directory.NewService(src, cfg.SourceTimeout)
	app.Router = app.routes(svc, fixture, provider)
	return app, nil
}

// openSource picks the record source named by DATA_SOURCE.
func (a *App) openSource(ctx context.Context, fixture *source.Fixture) (directory.Source, error) {
	cfg := a.Config
	switch cfg.DataSource {
	case config.SourceRemote:
		client := &http.Client{Timeout: cfg.SourceTimeout}
		return source.NewRemote(cfg.SourceURL, source.Credentials{
			Username: cfg.SourceUsername,
			Password: cfg.SourcePassword,
		}, client), nil
	case config.SourcePostgres:
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		a.DB = pool
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		if cfg.RunSeed {
			records, err := fixture.FetchRecords(ctx)
			if err != nil {
				return nil, err
			}
			if err := db.Seed(ctx, pool, records); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
		}
		return source.NewPostgres(pool), nil
	default:
		return fixture, nil
	}
}

func (a *App) routes(svc *directory.Service, fixture *source.Fixture, provider auth.IdentityProvider) http.Handler {
	cfg := a.Config
	sessions := auth.NewRevocations()
	printer := format.New(cfg.Locale)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(chimw.CleanPath)
	router.Use(middleware.Metrics(a.metricsRecorder()))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret, sessions))
	router.Use(middleware.LoginRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := svc.Ready(ctx); err != nil {
			slog.Warn("readiness check failed", "err", err)
			http.Error(w, "source not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Metrics != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	if cfg.MockBackendEnabled {
		mock := tabledatahandler.NewHandler(fixture, source.Credentials{
			Username: cfg.SourceUsername,
			Password: cfg.SourcePassword,
		})
		mock.RegisterRoutes(router)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

		authHandler := authhandler.NewHandler(provider, cfg.JWTSecret, cfg.TokenTTL, sessions)
		authHandler.RegisterRoutes(r)

		employeesHandler := employeeshandler.NewHandler(svc, printer)
		employeesHandler.RegisterRoutes(r)

		analyticsHandler := analyticshandler.NewHandler(svc, printer)
		analyticsHandler.RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}

func (a *App) metricsRecorder() middleware.MetricsRecorder {
	if a.Metrics == nil {
		return nil
	}
	return a.Metrics
}

func (a *App) Close() {
	if a == nil || a.DB == nil {
		return
	}
	a.DB.Close()
	a.DB = nil
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, filepath.Clean("/"+r.URL.Path))
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	index := filepath.Join(h.staticPath, h.indexPath)
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
