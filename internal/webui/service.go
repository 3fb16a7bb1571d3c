// Package webui provides the local configuration and TTS-testing web UI.
package webui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/herald-hooks/herald/internal/activity"
	"github.com/herald-hooks/herald/internal/config"
)

const shutdownTimeout = 5 * time.Second

// Service is the local HTTP server behind `herald ui`.
type Service struct {
	version  string
	recorder *activity.Recorder
	router   *chi.Mux
}

// NewService creates the UI service.
func NewService(version string) *Service {
	s := &Service{
		version:  version,
		recorder: activity.NewRecorder(config.ActivityLogPath()),
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Service) routes() {
	r := s.router
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
		r.Get("/activity", s.handleListActivity)
		r.Delete("/activity", s.handleClearActivity)
		r.Post("/tts/test", s.handleTTSTest)
	})
}

// Handler exposes the router for tests.
func (s *Service) Handler() http.Handler { return s.router }

// Run serves the UI on localhost until ctx is cancelled. A settings file
// watcher runs alongside so edits made outside the UI (or by the UI's own
// PUT) are picked up without restarting.
func (s *Service) Run(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("web UI listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := config.Watch(gctx, nil)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
