//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/smartfocus/smartfocus-backend/internal/adapter/postgres"
	eventrepo "github.com/smartfocus/smartfocus-backend/internal/adapter/postgres/event"
	subjectrepo "github.com/smartfocus/smartfocus-backend/internal/adapter/postgres/subject"
	"github.com/smartfocus/smartfocus-backend/internal/adapter/postgres/testhelper"
	"github.com/smartfocus/smartfocus-backend/internal/config"
	"github.com/smartfocus/smartfocus-backend/internal/domain"
	commandsvc "github.com/smartfocus/smartfocus-backend/internal/service/command"
	eventsvc "github.com/smartfocus/smartfocus-backend/internal/service/event"
	subjectsvc "github.com/smartfocus/smartfocus-backend/internal/service/subject"
	"github.com/smartfocus/smartfocus-backend/internal/transport/middleware"
	"github.com/smartfocus/smartfocus-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// plannerStub stands in for the external planning model so e2e runs are
// deterministic and offline. Tests set Fn before issuing a command.
type plannerStub struct {
	mu sync.Mutex
	Fn func(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error)

	// Requests records every planning request, newest last.
	Requests []domain.PlanRequest
}

func (p *plannerStub) Generate(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error) {
	p.mu.Lock()
	p.Requests = append(p.Requests, req)
	fn := p.Fn
	p.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, req)
}

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Planner *plannerStub
}

// setupTestServer wires the full HTTP stack against a disposable Postgres
// container, with only the planner replaced by a stub.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := postgres.NewTxManager(pool)
	subjects := subjectrepo.New(pool)
	events := eventrepo.New(pool)

	planner := &plannerStub{}

	cmdCfg := config.CommandConfig{
		MaxActions:          10,
		SimilarityThreshold: 0.72,
		MaxCommandLength:    2000,
	}

	subjectService := subjectsvc.NewService(logger, subjects, txManager)
	eventService := eventsvc.NewService(logger, events)
	commandService := commandsvc.NewService(logger, subjects, events, planner, cmdCfg)

	healthHandler := rest.NewHealthHandler(pool, "e2e")
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

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:     srv.URL,
		Client:  srv.Client(),
		Pool:    pool,
		Planner: planner,
	}
}

// doJSON issues a request with the trusted identity header set and decodes
// the JSON response body into out (when out is non-nil).
func (ts *testServer) doJSON(t *testing.T, method, path string, userID uuid.UUID, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserIDHeader, userID.String())

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

// createSubject creates a subject over the API and returns its id.
func (ts *testServer) createSubject(t *testing.T, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	var resp struct {
		ID uuid.UUID `json:"id"`
	}
	status := ts.doJSON(t, http.MethodPost, "/api/v1/subjects", userID,
		map[string]any{"name": name}, &resp)
	require.Equal(t, http.StatusCreated, status)
	return resp.ID
}

// commandReport is the wire shape of an execution report.
type commandReport struct {
	Status  string `json:"status"`
	Summary string `json:"summary"`
	Actions []struct {
		Description string `json:"description"`
		Outcome     string `json:"outcome"`
		Reason      string `json:"reason,omitempty"`
	} `json:"actions"`
}

// runCommand posts a natural-language command and returns the report.
func (ts *testServer) runCommand(t *testing.T, userID uuid.UUID, text string) commandReport {
	t.Helper()

	var report commandReport
	status := ts.doJSON(t, http.MethodPost, "/api/v1/nl/command", userID,
		map[string]any{"text": text}, &report)
	require.Equal(t, http.StatusOK, status)
	return report
}
