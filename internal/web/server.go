// Package web serves the Fernlight marketing site.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/notifier"
	"github.com/fernlight-labs/fernsite/internal/web/router"
	"github.com/fernlight-labs/fernsite/internal/web/viewer"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// Server is the main web server.
type Server struct {
	content      *content.Store
	registry     *banners.Registry
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the web server.
type Config struct {
	Content       *content.Store
	Port          int
	Watch         bool
	SessionSecret string

	// Banner tunes the per-viewer controllers.
	Banner banner.Config

	// IdleTTL and SweepInterval tune registry eviction; zero means the
	// registry defaults.
	IdleTTL       time.Duration
	SweepInterval time.Duration

	Logger *slog.Logger
}

// NewServer creates a new web server instance.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	registry := banners.New(banners.Config{
		Banner:        cfg.Banner,
		IdleTTL:       cfg.IdleTTL,
		SweepInterval: cfg.SweepInterval,
		Logger:        cfg.Logger,
	})

	return &Server{
		content:      cfg.Content,
		registry:     registry,
		sessionStore: viewer.NewStore(cfg.SessionSecret),
		port:         cfg.Port,
		watch:        cfg.Watch,
		logger:       cfg.Logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the web server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting web server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.content, s.registry, s.sessionStore, s.notifier, s.watch); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Evict banner controllers for viewers who left
	eg.Go(func() error {
		return s.registry.Run(egctx)
	})

	// Start content watcher if enabled
	if s.watch {
		eg.Go(func() error {
			return s.watchContent(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down web server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchContent reloads the content bundle when its files change and tells
// connected pages to refresh.
func (s *Server) watchContent(ctx context.Context) error {
	dir := s.content.Dir()
	if dir == "" {
		s.logger.Warn("content watching disabled: serving embedded defaults")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(dir); err != nil {
		s.logger.Error("failed to watch content directory", "dir", dir, "error", err)
		// Don't fail - continue without watching
		return nil
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			ext := filepath.Ext(event.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("content changed, reloading", "file", event.Name)

				if err := s.content.Reload(); err != nil {
					// The previous bundle keeps serving.
					s.logger.Error("content reload failed", "error", err)
					return
				}

				s.notifier.Broadcast()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
