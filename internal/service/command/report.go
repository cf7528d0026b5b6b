package command

import (
	"errors"
	"fmt"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// buildReport aggregates per-action results into one PlanReport. Overall
// status is SUCCEEDED only when every action succeeded (an empty plan counts
// as succeeded), FAILED when every action failed, PARTIALLY_SUCCEEDED for a
// mix.
func buildReport(plan []domain.PlannedAction, results []actionResult) *domain.PlanReport {
	report := &domain.PlanReport{
		Actions: make([]domain.ActionReport, len(plan)),
	}

	for i := range plan {
		report.Actions[i] = domain.ActionReport{
			Index:       i,
			Description: plan[i].Describe(),
			Outcome:     results[i].outcome,
			Reason:      results[i].reason,
		}
	}

	succeeded, failed := report.Counts()
	switch {
	case failed == 0:
		report.Status = domain.PlanStatusSucceeded
	case succeeded == 0:
		report.Status = domain.PlanStatusFailed
	default:
		report.Status = domain.PlanStatusPartiallySucceeded
	}

	report.Summary = report.RenderSummary()
	return report
}

// rejectedReport renders a plan that never reached execution. Schema issues
// map back to their action indexes; a security violation rejects without
// per-action detail.
func rejectedReport(err error) *domain.PlanReport {
	report := &domain.PlanReport{
		Status:  domain.PlanStatusRejected,
		Summary: err.Error(),
	}

	var planErr *domain.PlanValidationError
	if errors.As(err, &planErr) {
		report.Actions = make([]domain.ActionReport, 0, len(planErr.Issues))
		for _, issue := range planErr.Issues {
			report.Actions = append(report.Actions, domain.ActionReport{
				Index:       issue.Index,
				Description: fmt.Sprintf("action %d", issue.Index),
				Outcome:     domain.ActionOutcomeFailed,
				Reason:      fmt.Sprintf("%s: %s", issue.Field, issue.Message),
			})
		}
	}

	return report
}
