package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwellhq/blog-api/internal/blog"
	bloghandlers "github.com/inkwellhq/blog-api/internal/blog/handlers"
	"github.com/inkwellhq/blog-api/internal/config"
	"github.com/inkwellhq/blog-api/internal/database"
	"github.com/inkwellhq/blog-api/internal/logger"
	"github.com/inkwellhq/blog-api/internal/server/handlers"
	"github.com/inkwellhq/blog-api/internal/server/middleware"
	"github.com/inkwellhq/blog-api/internal/version"
)

type Server struct {
	pool     *pgxpool.Pool
	queries  *database.Queries
	store    blog.PostStore
	config   *config.ServerEnvironment
	logger   *slog.Logger
	router   *chi.Mux
	registry *prometheus.Registry
}

func NewServer(
	pool *pgxpool.Pool,
	queries *database.Queries,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) *Server {
	server := &Server{
		pool:     pool,
		queries:  queries,
		store:    blog.NewPostgresStore(queries),
		config:   cfg,
		logger:   logger,
		router:   chi.NewRouter(),
		registry: prometheus.NewRegistry(),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(s.config.WriteTimeout))
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.SecurityHeaders(s.config.Environment))
	s.router.Use(middleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxRequestBodySize))

	metrics := middleware.NewHTTPMetrics(s.registry)
	s.router.Use(metrics.Middleware)
}

func (s *Server) registerRoutes() {
	postsHandler := bloghandlers.NewPostsHandler(s.store)

	s.router.Route("/posts", func(r chi.Router) {
		r.Get("/", postsHandler.HandleGetPosts)
		r.Post("/", postsHandler.HandleCreatePost)
		r.Get("/{postID}", postsHandler.HandleGetPostByID)
		r.Put("/{postID}", postsHandler.HandleUpdatePost)
		r.Delete("/{postID}", postsHandler.HandleDeletePost)
	})

	s.router.Get("/health/live", handlers.HandleHealth)
	s.router.Get("/ready", handlers.HandleReadiness(s.queries))

	v := version.Get()
	s.router.Get("/version", handlers.HandleVersion(v.Version, v.BuildDate))

	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr))

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.pool != nil {
		s.pool.Close()
		s.logger.Info("database connection closed")
	}
}
