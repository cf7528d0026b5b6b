package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// ListEvents returns all events of one subject owned by the authenticated
// user, ordered by due date.
func (s *Service) ListEvents(ctx context.Context, subjectID uuid.UUID) ([]*domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	events, err := s.events.ListBySubject(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
