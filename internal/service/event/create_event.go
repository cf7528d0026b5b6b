package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// CreateEvent creates a new event under a subject owned by the authenticated
// user.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.EventStatusPending
	if input.Status != nil {
		status = *input.Status
	}

	event, err := s.events.Create(ctx, userID, &domain.Event{
		SubjectID:   input.SubjectID,
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		DueAt:       input.DueAt.UTC(),
		Status:      status,
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event created",
		slog.String("user_id", userID.String()),
		slog.String("event_id", event.ID.String()),
		slog.String("subject_id", event.SubjectID.String()))

	return event, nil
}
