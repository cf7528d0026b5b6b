package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smartfocus/smartfocus-backend/internal/adapter/postgres"
	eventrepo "github.com/smartfocus/smartfocus-backend/internal/adapter/postgres/event"
	subjectrepo "github.com/smartfocus/smartfocus-backend/internal/adapter/postgres/subject"
	"github.com/smartfocus/smartfocus-backend/internal/adapter/provider/claude"
	"github.com/smartfocus/smartfocus-backend/internal/config"
	commandsvc "github.com/smartfocus/smartfocus-backend/internal/service/command"
	eventsvc "github.com/smartfocus/smartfocus-backend/internal/service/event"
	subjectsvc "github.com/smartfocus/smartfocus-backend/internal/service/subject"
	"github.com/smartfocus/smartfocus-backend/internal/transport/middleware"
	"github.com/smartfocus/smartfocus-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and HTTP handlers, and serves until the
// context is cancelled, then shuts down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	subjects := subjectrepo.New(pool)
	events := eventrepo.New(pool)

	planner := claude.New(cfg.Planner, logger)

	subjectService := subjectsvc.NewService(logger, subjects, txManager)
	eventService := eventsvc.NewService(logger, events)
	commandService := commandsvc.NewService(logger, subjects, events, planner, cfg.Command)

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	commandHandler := rest.NewCommandHandler(commandService)
	subjectHandler := rest.NewSubjectHandler(subjectService)
	eventHandler := rest.NewEventHandler(eventService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /api/v1/nl/command", commandHandler.Execute)

	mux.HandleFunc("POST /api/v1/subjects", subjectHandler.Create)
	mux.HandleFunc("GET /api/v1/subjects", subjectHandler.List)
	mux.HandleFunc("GET /api/v1/subjects/{id}", subjectHandler.Get)
	mux.HandleFunc("PATCH /api/v1/subjects/{id}", subjectHandler.Update)
	mux.HandleFunc("DELETE /api/v1/subjects/{id}", subjectHandler.Delete)

	mux.HandleFunc("POST /api/v1/subjects/{id}/events", eventHandler.Create)
	mux.HandleFunc("GET /api/v1/subjects/{id}/events", eventHandler.ListBySubject)
	mux.HandleFunc("GET /api/v1/events/{id}", eventHandler.Get)
	mux.HandleFunc("PATCH /api/v1/events/{id}", eventHandler.Update)
	mux.HandleFunc("DELETE /api/v1/events/{id}", eventHandler.Delete)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Identity(),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("application stopped")
	return nil
}
