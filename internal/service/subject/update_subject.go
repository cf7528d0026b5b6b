package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// UpdateSubject applies a partial update to a subject owned by the
// authenticated user.
func (s *Service) UpdateSubject(ctx context.Context, input UpdateSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SubjectUpdateParams{
		Description: input.Description,
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}

	subject, err := s.subjects.Update(ctx, userID, input.SubjectID, params)
	if err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}

	s.log.Info("subject updated",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subject.ID.String()))

	return subject, nil
}
