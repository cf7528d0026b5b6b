package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// DeleteEvent removes an event reachable by the authenticated user.
func (s *Service) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if eventID == uuid.Nil {
		return domain.NewValidationError("event_id", "required")
	}

	if err := s.events.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Info("event deleted",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()))

	return nil
}
