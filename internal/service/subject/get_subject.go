package subject

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// GetSubject returns one subject owned by the authenticated user.
func (s *Service) GetSubject(ctx context.Context, subjectID uuid.UUID) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}

	subject, err := s.subjects.GetByID(ctx, userID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return subject, nil
}
