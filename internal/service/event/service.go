package event

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

// Service provides event management operations. Ownership runs through the
// subject chain: an event is reachable only when its subject belongs to the
// authenticated user, which the repository enforces on every call.
type Service struct {
	events eventRepo
	log    *slog.Logger
}

// NewService creates a new Event service.
func NewService(log *slog.Logger, events eventRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "event"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
