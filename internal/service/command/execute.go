package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// actionResult is one action's execution outcome before aggregation.
type actionResult struct {
	outcome domain.ActionOutcome
	reason  string
}

func failed(format string, args ...any) actionResult {
	return actionResult{outcome: domain.ActionOutcomeFailed, reason: fmt.Sprintf(format, args...)}
}

// executePlan applies resolved actions in planner order. Partial failure is
// the contract: one action's failure never stops its siblings, and there is
// no plan-wide transaction. Cancellation mid-plan marks the remaining
// actions failed instead of dropping them from the report.
func (s *Service) executePlan(ctx context.Context, userID uuid.UUID, plan []domain.PlannedAction) []actionResult {
	results := make([]actionResult, len(plan))

	// created maps CREATE_SUBJECT plan indexes to the identifiers they
	// produced, for actions referencing a subject made earlier in the plan.
	created := make(map[int]uuid.UUID)

	for i := range plan {
		a := &plan[i]

		if err := ctx.Err(); err != nil {
			results[i] = failed("cancelled before execution")
			continue
		}
		if a.ResolveErr != nil {
			results[i] = failed("%s", a.ResolveErr.Error())
			continue
		}
		if a.PendingSubject >= 0 {
			id, ok := created[a.PendingSubject]
			if !ok {
				results[i] = failed("depends on an action that did not succeed")
				continue
			}
			a.SubjectID = &id
		}

		results[i] = s.applyAction(ctx, userID, i, a, created)

		if results[i].outcome == domain.ActionOutcomeFailed {
			s.log.Warn("action failed",
				slog.Int("index", i),
				slog.String("action", a.Kind.String()),
				slog.String("reason", results[i].reason))
		}
	}

	return results
}

// applyAction performs one mutation through the user-scoped repositories.
// Ownership and existence are re-checked by the store at mutation time, so a
// target that vanished since resolution fails this action only.
func (s *Service) applyAction(ctx context.Context, userID uuid.UUID, idx int, a *domain.PlannedAction, created map[int]uuid.UUID) actionResult {
	switch a.Kind {
	case domain.ActionCreateSubject:
		subject, err := s.subjects.Create(ctx, userID, &domain.Subject{
			Name:        *a.Name,
			Description: a.Description,
		})
		if err != nil {
			return execFailure("create subject", err)
		}
		created[idx] = subject.ID

	case domain.ActionUpdateSubject:
		_, err := s.subjects.Update(ctx, userID, *a.SubjectID, domain.SubjectUpdateParams{
			Name:        a.Name,
			Description: a.Description,
		})
		if err != nil {
			return execFailure("update subject", err)
		}

	case domain.ActionDeleteSubject:
		if err := s.subjects.Delete(ctx, userID, *a.SubjectID); err != nil {
			return execFailure("delete subject", err)
		}

	case domain.ActionCreateEvent:
		status := domain.EventStatusPending
		if a.Status != nil {
			status = *a.Status
		}
		_, err := s.events.Create(ctx, userID, &domain.Event{
			SubjectID:   *a.SubjectID,
			Name:        *a.Name,
			Description: a.Description,
			DueAt:       *a.DueAt,
			Status:      status,
		})
		if err != nil {
			return execFailure("create event", err)
		}

	case domain.ActionUpdateEvent:
		_, err := s.events.Update(ctx, userID, *a.EventID, domain.EventUpdateParams{
			Name:        a.Name,
			Description: a.Description,
			DueAt:       a.DueAt,
			Status:      a.Status,
		})
		if err != nil {
			return execFailure("update event", err)
		}

	case domain.ActionDeleteEvent:
		if err := s.events.Delete(ctx, userID, *a.EventID); err != nil {
			return execFailure("delete event", err)
		}

	case domain.ActionBulkDeleteEvents:
		// Zero matching events is a success, not an error.
		if _, err := s.events.DeleteBySubject(ctx, userID, *a.SubjectID); err != nil {
			return execFailure("delete events", err)
		}
	}

	return actionResult{outcome: domain.ActionOutcomeSucceeded}
}

// execFailure renders a repository error as a per-action failure. ErrNotFound
// at this stage means the target vanished between resolution and execution.
func execFailure(op string, err error) actionResult {
	if errors.Is(err, domain.ErrNotFound) {
		return failed("%s: target no longer exists", op)
	}
	return failed("%s: %s", op, err.Error())
}
