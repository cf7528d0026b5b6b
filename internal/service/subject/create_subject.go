package subject

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// CreateSubject creates a new subject for the authenticated user.
func (s *Service) CreateSubject(ctx context.Context, input CreateSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	description := trimOrNil(input.Description)

	// The count check and the insert share one transaction so two concurrent
	// creates cannot both pass the limit.
	var subject *domain.Subject
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.subjects.Count(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count subjects: %w", err)
		}
		if count >= MaxSubjectsPerUser {
			return domain.NewValidationError("subjects", "limit reached (max 100)")
		}

		subject, err = s.subjects.Create(txCtx, userID, &domain.Subject{
			Name:        name,
			Description: description,
		})
		if err != nil {
			return fmt.Errorf("create subject: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("subject created",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subject.ID.String()))

	return subject, nil
}
