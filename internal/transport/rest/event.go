package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	eventsvc "github.com/smartfocus/smartfocus-backend/internal/service/event"
)

type eventService interface {
	CreateEvent(ctx context.Context, input eventsvc.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	ListEvents(ctx context.Context, subjectID uuid.UUID) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, input eventsvc.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

// EventHandler serves the event CRUD endpoints.
type EventHandler struct {
	events eventService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventService) *EventHandler {
	return &EventHandler{events: events}
}

// eventResponse is the JSON shape of one event.
type eventResponse struct {
	ID          uuid.UUID          `json:"id"`
	SubjectID   uuid.UUID          `json:"subject_id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	DueAt       time.Time          `json:"due_at"`
	Status      domain.EventStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		SubjectID:   e.SubjectID,
		Name:        e.Name,
		Description: e.Description,
		DueAt:       e.DueAt,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type createEventRequest struct {
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	DueAt       time.Time           `json:"due_at"`
	Status      *domain.EventStatus `json:"status"`
}

type updateEventRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	DueAt       *time.Time          `json:"due_at"`
	Status      *domain.EventStatus `json:"status"`
}

// Create handles POST /api/v1/subjects/{id}/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subject id"})
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	event, err := h.events.CreateEvent(r.Context(), eventsvc.CreateEventInput{
		SubjectID:   subjectID,
		Name:        req.Name,
		Description: req.Description,
		DueAt:       req.DueAt,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// ListBySubject handles GET /api/v1/subjects/{id}/events.
func (h *EventHandler) ListBySubject(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subject id"})
		return
	}

	events, err := h.events.ListEvents(r.Context(), subjectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.events.GetEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Update handles PATCH /api/v1/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	event, err := h.events.UpdateEvent(r.Context(), eventsvc.UpdateEventInput{
		EventID:     id,
		Name:        req.Name,
		Description: req.Description,
		DueAt:       req.DueAt,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Delete handles DELETE /api/v1/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id"})
		return
	}

	if err := h.events.DeleteEvent(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
