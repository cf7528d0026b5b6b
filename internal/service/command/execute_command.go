package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
	"github.com/smartfocus/smartfocus-backend/pkg/ctxutil"
)

// Execute runs one natural-language command through the full pipeline and
// returns its report. A rejected plan (schema or security violation) comes
// back as a REJECTED report, not an error; errors are reserved for bad input,
// a missing identity and planner unavailability, where retrying makes sense.
func (s *Service) Execute(ctx context.Context, input ExecuteCommandInput) (*domain.PlanReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.cfg.MaxCommandLength); err != nil {
		return nil, err
	}

	subjects, err := s.subjects.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	names := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		names = append(names, sub.Name)
	}

	raw, err := s.planner.Generate(ctx, domain.PlanRequest{
		CommandText:  input.Text,
		SubjectNames: names,
		MaxActions:   s.cfg.MaxActions,
		Today:        s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrPlanRejected) {
			s.log.Warn("planner output rejected", slog.String("error", err.Error()))
			return rejectedReport(err), nil
		}
		return nil, err
	}

	plan, err := validatePlan(raw, s.cfg.MaxActions)
	if err != nil {
		s.log.Warn("plan failed validation", slog.String("error", err.Error()))
		return rejectedReport(err), nil
	}

	if err := s.resolvePlan(ctx, userID, subjects, plan); err != nil {
		if errors.Is(err, domain.ErrSecurityViolation) {
			// Logged distinctly: a cross-user reference is an audit event,
			// not a user mistake.
			s.log.Error("security violation in plan",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			return rejectedReport(err), nil
		}
		return nil, err
	}

	results := s.executePlan(ctx, userID, plan)
	report := buildReport(plan, results)

	succeeded, failed := report.Counts()
	s.log.Info("command executed",
		slog.String("status", report.Status.String()),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed))

	return report, nil
}
