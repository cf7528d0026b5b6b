package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	subjectsvc "github.com/smartfocus/smartfocus-backend/internal/service/subject"
)

type subjectService interface {
	CreateSubject(ctx context.Context, input subjectsvc.CreateSubjectInput) (*domain.Subject, error)
	GetSubject(ctx context.Context, subjectID uuid.UUID) (*domain.Subject, error)
	ListSubjects(ctx context.Context) ([]*domain.Subject, error)
	UpdateSubject(ctx context.Context, input subjectsvc.UpdateSubjectInput) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, subjectID uuid.UUID) error
}

// SubjectHandler serves the subject CRUD endpoints.
type SubjectHandler struct {
	subjects subjectService
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(subjects subjectService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects}
}

// subjectResponse is the JSON shape of one subject.
type subjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSubjectResponse(s *domain.Subject) subjectResponse {
	return subjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type createSubjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateSubjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create handles POST /api/v1/subjects.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	subject, err := h.subjects.CreateSubject(r.Context(), subjectsvc.CreateSubjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubjectResponse(subject))
}

// Get handles GET /api/v1/subjects/{id}.
func (h *SubjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subject id"})
		return
	}

	subject, err := h.subjects.GetSubject(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(subject))
}

// List handles GET /api/v1/subjects.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjects.ListSubjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]subjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, toSubjectResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/subjects/{id}.
func (h *SubjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subject id"})
		return
	}

	var req updateSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	subject, err := h.subjects.UpdateSubject(r.Context(), subjectsvc.UpdateSubjectInput{
		SubjectID:   id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubjectResponse(subject))
}

// Delete handles DELETE /api/v1/subjects/{id}.
func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid subject id"})
		return
	}

	if err := h.subjects.DeleteSubject(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
