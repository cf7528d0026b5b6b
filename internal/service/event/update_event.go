package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// UpdateEvent applies a partial update to an event reachable by the
// authenticated user.
func (s *Service) UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.EventUpdateParams{
		Description: input.Description,
		Status:      input.Status,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.DueAt != nil {
		due := input.DueAt.UTC()
		params.DueAt = &due
	}

	event, err := s.events.Update(ctx, userID, input.EventID, params)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.log.Info("event updated",
		slog.String("user_id", userID.String()),
		slog.String("event_id", event.ID.String()))

	return event, nil
}
