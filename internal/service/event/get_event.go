package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// GetEvent returns one event reachable by the authenticated user.
func (s *Service) GetEvent(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	event, err := s.events.GetByID(ctx, userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}
