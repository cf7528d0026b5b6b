package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/internal/service/command"
)

type commandService interface {
	Execute(ctx context.Context, input command.ExecuteCommandInput) (*domain.PlanReport, error)
}

// CommandHandler serves the natural-language command endpoint.
type CommandHandler struct {
	commands commandService
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(commands commandService) *CommandHandler {
	return &CommandHandler{commands: commands}
}

// commandRequest is the JSON body for POST /api/v1/nl/command.
type commandRequest struct {
	Text string `json:"text"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// Execute handles POST /api/v1/nl/command. The report always comes back with
// status 200 when the pipeline ran, whatever the plan's outcome; transport
// errors get their own codes.
func (h *CommandHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	report, err := h.commands.Execute(r.Context(), command.ExecuteCommandInput{Text: req.Text})
	if err != nil {
		writeCommandError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeCommandError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPlanningUnavailable):
		// Safe to retry: the planning call mutates nothing.
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "planning service unavailable, retry later"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
