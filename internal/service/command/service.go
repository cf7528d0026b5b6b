package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/config"
	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

type subjectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	Delete(ctx context.Context, userID, subjectID uuid.UUID) error
}

type eventRepo interface {
	Create(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error)
	ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
	DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int, error)
}

type planner interface {
	Generate(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error)
}

// Service runs natural-language commands end to end: plan generation,
// validation, reference resolution, execution and reporting.
type Service struct {
	subjects subjectRepo
	events   eventRepo
	planner  planner
	cfg      config.CommandConfig
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new command service.
func NewService(
	log *slog.Logger,
	subjects subjectRepo,
	events eventRepo,
	planner planner,
	cfg config.CommandConfig,
) *Service {
	return &Service{
		subjects: subjects,
		events:   events,
		planner:  planner,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "command"),
	}
}
