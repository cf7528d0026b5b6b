package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawAction is one loosely-typed action record as returned by the planning
// service. It is untrusted input: the validator measures it against the
// closed action schema before anything downstream sees it.
type RawAction map[string]any

// Kind returns the action tag, or "" if absent or not a string.
func (r RawAction) Kind() string {
	s, _ := r["action"].(string)
	return s
}

// PlanRequest carries everything the planning service needs to produce a
// candidate plan for one command. SubjectNames gives the planner the user's
// actual catalog so it can emit references that resolve.
type PlanRequest struct {
	CommandText  string
	SubjectNames []string
	MaxActions   int
	Today        time.Time
}

// PlannedAction is one validated action of a plan. Before resolution it
// carries name-based references (SubjectRef/EventRef); after resolution it
// carries concrete identifiers. An action never executes with an unresolved
// reference.
type PlannedAction struct {
	Kind ActionKind

	// Name-based references from the planner.
	SubjectRef string
	EventRef   string

	// Concrete identifiers. When these come directly from the planner they
	// are untrusted until the resolver verifies ownership.
	SubjectID *uuid.UUID
	EventID   *uuid.UUID

	// PendingSubject is the index of an earlier CREATE_SUBJECT action in the
	// same plan whose created identifier this action must use. -1 when unset.
	PendingSubject int

	// Mutation payload.
	Name        *string
	Description *string
	DueAt       *time.Time
	Status      *EventStatus

	// ResolveErr records a per-action resolution failure. The executor skips
	// such actions and reports the reason; sibling actions still run.
	ResolveErr error
}

// NeedsSubject reports whether the action targets a subject (directly or as
// the parent of an event).
func (a *PlannedAction) NeedsSubject() bool {
	switch a.Kind {
	case ActionUpdateSubject, ActionDeleteSubject, ActionCreateEvent, ActionBulkDeleteEvents:
		return true
	case ActionUpdateEvent, ActionDeleteEvent:
		return a.EventID == nil
	}
	return false
}

// Describe renders a short human-readable form of the action for reports.
func (a *PlannedAction) Describe() string {
	var b strings.Builder
	switch a.Kind {
	case ActionCreateSubject:
		fmt.Fprintf(&b, "create subject %q", deref(a.Name))
	case ActionUpdateSubject:
		fmt.Fprintf(&b, "update subject %s", a.targetSubject())
	case ActionDeleteSubject:
		fmt.Fprintf(&b, "delete subject %s", a.targetSubject())
	case ActionCreateEvent:
		fmt.Fprintf(&b, "create event %q in subject %s", deref(a.Name), a.targetSubject())
		if a.DueAt != nil {
			fmt.Fprintf(&b, " due %s", a.DueAt.Format("2006-01-02"))
		}
	case ActionUpdateEvent:
		fmt.Fprintf(&b, "update event %s", a.targetEvent())
	case ActionDeleteEvent:
		fmt.Fprintf(&b, "delete event %s", a.targetEvent())
	case ActionBulkDeleteEvents:
		fmt.Fprintf(&b, "delete all events of subject %s", a.targetSubject())
	default:
		fmt.Fprintf(&b, "%s", a.Kind)
	}
	return b.String()
}

func (a *PlannedAction) targetSubject() string {
	if a.SubjectRef != "" {
		return fmt.Sprintf("%q", a.SubjectRef)
	}
	if a.SubjectID != nil {
		return a.SubjectID.String()
	}
	return "(unspecified)"
}

func (a *PlannedAction) targetEvent() string {
	if a.EventRef != "" {
		return fmt.Sprintf("%q", a.EventRef)
	}
	if a.EventID != nil {
		return a.EventID.String()
	}
	return "(unspecified)"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
