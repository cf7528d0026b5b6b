package domain

import (
	"fmt"
	"strings"
)

// ActionReport is the per-action record in a PlanReport.
type ActionReport struct {
	Index       int           `json:"index"`
	Description string        `json:"description"`
	Outcome     ActionOutcome `json:"outcome"`
	Reason      string        `json:"reason,omitempty"`
}

// PlanReport is the deterministic outcome of one natural-language command.
// It is constructed fresh per command and discarded after the response is
// sent; failed actions are never retried automatically.
type PlanReport struct {
	Status  PlanStatus     `json:"status"`
	Summary string         `json:"summary"`
	Actions []ActionReport `json:"actions"`
}

// Counts returns the number of succeeded and failed actions.
func (r *PlanReport) Counts() (succeeded, failed int) {
	for _, a := range r.Actions {
		if a.Outcome == ActionOutcomeSucceeded {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// RenderSummary builds the human-readable summary line for the report.
func (r *PlanReport) RenderSummary() string {
	succeeded, failed := r.Counts()
	var b strings.Builder
	fmt.Fprintf(&b, "%d succeeded, %d failed", succeeded, failed)
	for _, a := range r.Actions {
		if a.Outcome == ActionOutcomeFailed {
			fmt.Fprintf(&b, "; action %d (%s): %s", a.Index, a.Description, a.Reason)
		}
	}
	return b.String()
}
