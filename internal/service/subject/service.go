package subject

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

type subjectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error)
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	Delete(ctx context.Context, userID, subjectID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxSubjectsPerUser = 100
)

// Service provides subject management operations.
type Service struct {
	subjects subjectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Subject service.
func NewService(log *slog.Logger, subjects subjectRepo, tx txManager) *Service {
	return &Service{
		subjects: subjects,
		tx:       tx,
		log:      log.With("service", "subject"),
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
