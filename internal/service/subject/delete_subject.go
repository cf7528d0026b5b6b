package subject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// DeleteSubject removes a subject owned by the authenticated user. Its
// events go with it in the same statement.
func (s *Service) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if subjectID == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}

	if err := s.subjects.Delete(ctx, userID, subjectID); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	s.log.Info("subject deleted",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subjectID.String()))

	return nil
}
