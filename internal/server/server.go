// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer: it connects handlers, middleware, and routes.
// Think of it as the control centre that decides:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
// cmd/portfolio creates:
//
//	config.Config + page.Composer (content, theme, templates) → passed to Server
//
// Server.New() creates, when analytics are on:
//
//	sqlite.DB → AnalyticsService → AnalyticsHandler + RecordVisits middleware
//	                             ↘ Pruner (background retention sweep)
//	TokenService + PasswordService → AdminService → AuthHandler
//
// This is the "composition root" pattern: all dependencies are wired
// in one place (New/setupRoutes), rather than scattered across the codebase.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/portfolio/internal/auth"
	"github.com/sakif/portfolio/internal/config"
	"github.com/sakif/portfolio/internal/handler"
	"github.com/sakif/portfolio/internal/middleware"
	"github.com/sakif/portfolio/internal/page"
	sqliteRepo "github.com/sakif/portfolio/internal/repository/sqlite"
	"github.com/sakif/portfolio/internal/service"
	"github.com/sakif/portfolio/web"
)

// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
const ShutdownTimeout = 30 * time.Second

// Server represents the HTTP server and all its dependencies.
//
// RESOURCE MANAGEMENT:
// The Server owns the database connection (db) and the pruner goroutine when
// analytics are enabled. Close releases both; Start calls it on the way out.
type Server struct {
	router   *chi.Mux
	config   *config.Config
	composer *page.Composer
	revision string
	logger   *slog.Logger

	db        *sqliteRepo.DB // nil when analytics are off
	analytics *service.AnalyticsService
	pruner    *service.Pruner
}

// New creates a new Server.
//
// IMPORT ALIAS:
// We import repository/sqlite as `sqliteRepo` to avoid confusion with
// the sqlite driver package.
func New(cfg *config.Config, composer *page.Composer, revision string, logger *slog.Logger) (*Server, error) {
	if composer == nil {
		return nil, errors.New("server: composer must not be nil")
	}

	s := &Server{
		router:   chi.NewRouter(),
		config:   cfg,
		composer: composer,
		revision: revision,
		logger:   logger,
	}

	// === CREATE DATABASE (analytics only) ===
	if cfg.AnalyticsEnabled {
		if err := s.openAnalytics(); err != nil {
			return nil, err
		}
	}

	if err := s.setupRoutes(); err != nil {
		s.Close() // Clean up DB if route setup fails
		return nil, fmt.Errorf("server: setting up routes: %w", err)
	}

	return s, nil
}

func (s *Server) openAnalytics() error {
	if s.config.DBPath != ":memory:" {
		// os.MkdirAll creates all parent directories if needed (like `mkdir -p`).
		if err := os.MkdirAll(filepath.Dir(s.config.DBPath), 0o755); err != nil {
			return fmt.Errorf("server: creating database directory: %w", err)
		}
	}

	db, err := sqliteRepo.New(s.config.DBPath)
	if err != nil {
		return fmt.Errorf("server: opening database: %w", err)
	}

	analytics, err := service.NewAnalyticsService(db, s.config.AnalyticsSalt, s.config.Retention, s.logger)
	if err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.analytics = analytics
	s.pruner = service.NewPruner(analytics, service.DefaultPruneInterval, s.logger)
	return nil
}

// Handler returns the root handler. Tests drive it with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /                        → Portfolio page (HTML, rendered once)
// GET    /healthz                 → Liveness (JSON)
// GET    /static/*                → Embedded CSS and JS
// GET    /assets/*                → Images and the résumé PDF from ASSETS_DIR
// POST   /admin/login             → Password sign-in           [admin]
// POST   /admin/logout            → Clear session              [admin]
// GET    /admin/github/login      → Start GitHub sign-in       [admin + GitHub]
// GET    /admin/github/callback   → Finish GitHub sign-in      [admin + GitHub]
// GET    /admin/api/me            → Session subject            [admin, signed in]
// GET    /admin/api/stats         → Visit counters             [admin, signed in]
// GET    /admin/api/visits        → Recent visits              [admin, signed in]
//
// MIDDLEWARE ORDER MATTERS:
// Middleware executes in the order it's added. Our order:
// 1. RequestID: assigns unique ID to each request (for tracing)
// 2. RealIP: extracts real client IP from proxy headers
// 3. Recoverer: catches panics and returns 500 instead of crashing
// 4. Logger: logs each request with timing info
// 5. SecurityHeaders: referrer and sniffing policy on every response
// 6. RecordVisits: counts page views (analytics only)
func (s *Server) setupRoutes() error {
	// === Global Middleware ===
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.SecurityHeaders)
	if s.analytics != nil {
		s.router.Use(middleware.RecordVisits(s.analytics, s.logger))
	}

	// === Static Files ===
	// CSS and JS are embedded in the binary (web.Static), so the server has
	// no runtime dependency on the working directory. fs.Sub strips the
	// "static" prefix so GET /static/css/site.css → static/css/site.css.
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("opening embedded static files: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Assets live on disk so the owner can swap the photo or résumé without
	// a rebuild. A missing file is a plain 404 and the browser shows its
	// broken-image placeholder.
	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.config.AssetsDir)))
	s.router.Handle("/assets/*", noDirectoryListing(assets))

	// === Page Routes ===
	pageHandler, err := handler.NewPageHandler(s.composer, s.revision, s.logger)
	if err != nil {
		return err
	}
	s.router.Get("/", pageHandler.HandlePage)
	s.router.Head("/", pageHandler.HandlePage)
	s.router.Get("/healthz", pageHandler.HandleHealth)

	// === Admin Routes ===
	if !s.config.AdminEnabled() {
		if s.config.JWTSecret != "" {
			s.logger.Warn("JWT_SECRET is set but analytics are off, admin routes disabled")
		}
		return nil
	}
	return s.setupAdminRoutes()
}

// setupAdminRoutes wires the dashboard. It only runs when a JWT secret is
// configured and analytics are on, so s.analytics is non-nil here.
func (s *Server) setupAdminRoutes() error {
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}

	adminService := service.NewAdminService(tokens, auth.NewPasswordService(), service.AdminOptions{
		PasswordHash: s.config.AdminPasswordHash,
		GitHubLogins: s.config.AdminGitHubLogins,
	}, s.logger)

	var github *auth.GitHubProvider
	if s.config.GitHubEnabled() {
		github = auth.NewGitHubProvider(
			s.config.GitHubClientID,
			s.config.GitHubClientSecret,
			s.config.GitHubCallbackURL,
		)
	}

	authHandler := handler.NewAuthHandler(adminService, github, s.config.CookieSecure, s.logger)
	analyticsHandler := handler.NewAnalyticsHandler(s.analytics, s.logger)

	s.router.Route("/admin", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)

		if github != nil {
			r.Get("/github/login", authHandler.HandleGitHubLogin)
			r.Get("/github/callback", authHandler.HandleGitHubCallback)
		}

		// Protected API: RequireAdmin runs only for this sub-router.
		r.Route("/api", func(r chi.Router) {
			r.Use(auth.RequireAdmin(tokens))
			r.Get("/me", authHandler.HandleMe)
			r.Get("/stats", analyticsHandler.HandleStats)
			r.Get("/visits", analyticsHandler.HandleVisits)
		})
	})

	s.logger.Info("admin dashboard enabled",
		slog.Bool("password", adminService.PasswordEnabled()),
		slog.Bool("github", github != nil),
	)
	return nil
}

// Start starts the HTTP server and blocks until ctx is cancelled, a
// SIGINT/SIGTERM arrives, or the listener fails.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
// 3. Stop the pruner and close the database (flushes WAL, releases file lock)
func (s *Server) Start(ctx context.Context) error {
	// Runs AFTER everything else in this function finishes.
	defer s.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	if s.pruner != nil {
		s.pruner.Start()
	}

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.Bool("analytics", s.analytics != nil),
			slog.Bool("admin", s.config.AdminEnabled()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listening: %w", err)
		}
		return nil

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	case <-ctx.Done():
		s.logger.Info("shutdown requested", slog.String("reason", context.Cause(ctx).Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: graceful shutdown failed: %w", err)
	}
	s.logger.Info("server stopped gracefully")
	return nil
}

// Close stops the pruner and closes the database. Safe to call when
// analytics are off.
func (s *Server) Close() error {
	if s.pruner != nil {
		s.pruner.Stop()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// noDirectoryListing turns requests for a directory into 404s instead of
// an index of the asset folder.
func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
