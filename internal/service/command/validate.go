package command

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// actionShape describes the closed schema contract for one action kind.
type actionShape struct {
	allowed []string
	// check reports kind-specific required-field problems.
	check func(a *parsedFields) []string
}

var actionShapes = map[domain.ActionKind]actionShape{
	domain.ActionCreateSubject: {
		allowed: []string{"name", "description"},
		check: func(a *parsedFields) []string {
			if a.name == nil {
				return []string{"name: required"}
			}
			return nil
		},
	},
	domain.ActionUpdateSubject: {
		allowed: []string{"subject_ref", "subject_id", "name", "description"},
		check: func(a *parsedFields) []string {
			var problems []string
			problems = append(problems, needSubjectTarget(a)...)
			if a.name == nil && a.description == nil {
				problems = append(problems, "input: at least one of name, description must be provided")
			}
			return problems
		},
	},
	domain.ActionDeleteSubject: {
		allowed: []string{"subject_ref", "subject_id"},
		check:   needSubjectTarget,
	},
	domain.ActionCreateEvent: {
		allowed: []string{"subject_ref", "subject_id", "name", "due_at", "description", "status"},
		check: func(a *parsedFields) []string {
			var problems []string
			problems = append(problems, needSubjectTarget(a)...)
			if a.name == nil {
				problems = append(problems, "name: required")
			}
			if a.dueAt == nil && a.dueAtErr == "" {
				problems = append(problems, "due_at: required")
			}
			return problems
		},
	},
	domain.ActionUpdateEvent: {
		allowed: []string{"event_ref", "subject_ref", "event_id", "name", "due_at", "status", "description"},
		check: func(a *parsedFields) []string {
			var problems []string
			problems = append(problems, needEventTarget(a)...)
			if a.name == nil && a.description == nil && a.dueAt == nil && a.status == nil && a.dueAtErr == "" && a.statusErr == "" {
				problems = append(problems, "input: at least one of name, due_at, status, description must be provided")
			}
			return problems
		},
	},
	domain.ActionDeleteEvent: {
		allowed: []string{"event_ref", "subject_ref", "event_id"},
		check:   needEventTarget,
	},
	domain.ActionBulkDeleteEvents: {
		allowed: []string{"subject_ref", "subject_id"},
		check:   needSubjectTarget,
	},
}

func needSubjectTarget(a *parsedFields) []string {
	if a.subjectRef == "" && a.subjectID == nil && a.subjectIDErr == "" {
		return []string{"subject_ref: a subject reference or id is required"}
	}
	return nil
}

func needEventTarget(a *parsedFields) []string {
	if a.eventID != nil || a.eventIDErr != "" {
		return nil
	}
	var problems []string
	if a.eventRef == "" {
		problems = append(problems, "event_ref: an event reference or id is required")
	} else if a.subjectRef == "" && a.subjectID == nil && a.subjectIDErr == "" {
		problems = append(problems, "subject_ref: required alongside event_ref")
	}
	return problems
}

// parsedFields holds one action's typed fields plus per-field parse failures.
type parsedFields struct {
	subjectRef   string
	eventRef     string
	subjectID    *uuid.UUID
	subjectIDErr string
	eventID      *uuid.UUID
	eventIDErr   string
	name         *string
	description  *string
	dueAt        *time.Time
	dueAtErr     string
	status       *domain.EventStatus
	statusErr    string
}

// validatePlan measures a candidate plan against the closed action schema.
// All-or-nothing: any structural problem rejects the whole plan with a
// PlanValidationError naming every offending action. maxActions caps the plan
// length.
func validatePlan(raw []domain.RawAction, maxActions int) ([]domain.PlannedAction, error) {
	if len(raw) > maxActions {
		return nil, &domain.PlanValidationError{Issues: []domain.ActionIssue{
			{Index: 0, Field: "actions", Message: fmt.Sprintf("plan has %d actions, max %d", len(raw), maxActions)},
		}}
	}

	var issues []domain.ActionIssue
	plan := make([]domain.PlannedAction, 0, len(raw))

	for idx, r := range raw {
		kind := domain.ActionKind(r.Kind())
		if !kind.IsValid() {
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "action", Message: fmt.Sprintf("unknown action %q", r.Kind())})
			continue
		}
		shape := actionShapes[kind]

		for key := range r {
			if key == "action" || slices.Contains(shape.allowed, key) {
				continue
			}
			issues = append(issues, domain.ActionIssue{Index: idx, Field: key, Message: "unknown field for " + kind.String()})
		}

		fields, fieldIssues := parseFields(idx, r)
		issues = append(issues, fieldIssues...)

		for _, problem := range shape.check(fields) {
			field, msg, _ := strings.Cut(problem, ": ")
			issues = append(issues, domain.ActionIssue{Index: idx, Field: field, Message: msg})
		}

		plan = append(plan, domain.PlannedAction{
			Kind:           kind,
			SubjectRef:     fields.subjectRef,
			EventRef:       fields.eventRef,
			SubjectID:      fields.subjectID,
			EventID:        fields.eventID,
			PendingSubject: -1,
			Name:           fields.name,
			Description:    fields.description,
			DueAt:          fields.dueAt,
			Status:         fields.status,
		})
	}

	if len(issues) > 0 {
		return nil, &domain.PlanValidationError{Issues: issues}
	}
	return plan, nil
}

// parseFields extracts and types one action's fields. Parse failures become
// issues; the failure is also noted on parsedFields so required-field checks
// do not double-report a field that is present but malformed.
func parseFields(idx int, r domain.RawAction) (*parsedFields, []domain.ActionIssue) {
	var issues []domain.ActionIssue
	f := &parsedFields{}

	str := func(key string) (string, bool) {
		v, present := r[key]
		if !present {
			return "", false
		}
		s, ok := v.(string)
		if !ok {
			issues = append(issues, domain.ActionIssue{Index: idx, Field: key, Message: "must be a string"})
			return "", false
		}
		return s, true
	}

	if s, ok := str("subject_ref"); ok {
		f.subjectRef = strings.TrimSpace(s)
		if f.subjectRef == "" {
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "subject_ref", Message: "must not be empty"})
		}
	}
	if s, ok := str("event_ref"); ok {
		f.eventRef = strings.TrimSpace(s)
		if f.eventRef == "" {
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "event_ref", Message: "must not be empty"})
		}
	}

	if s, ok := str("subject_id"); ok {
		if id, err := uuid.Parse(s); err != nil {
			f.subjectIDErr = "not a valid id"
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "subject_id", Message: f.subjectIDErr})
		} else {
			f.subjectID = &id
		}
	}
	if s, ok := str("event_id"); ok {
		if id, err := uuid.Parse(s); err != nil {
			f.eventIDErr = "not a valid id"
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "event_id", Message: f.eventIDErr})
		} else {
			f.eventID = &id
		}
	}

	if s, ok := str("name"); ok {
		name := strings.TrimSpace(s)
		if name == "" {
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "name", Message: "must not be empty"})
		} else {
			f.name = &name
		}
	}
	if s, ok := str("description"); ok {
		f.description = &s
	}

	if s, ok := str("due_at"); ok {
		if t, err := parseDueAt(s); err != nil {
			f.dueAtErr = err.Error()
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "due_at", Message: f.dueAtErr})
		} else {
			f.dueAt = &t
		}
	}

	if s, ok := str("status"); ok {
		status := domain.EventStatus(strings.ToUpper(strings.TrimSpace(s)))
		if !status.IsValid() {
			f.statusErr = fmt.Sprintf("unknown status %q", s)
			issues = append(issues, domain.ActionIssue{Index: idx, Field: "status", Message: f.statusErr})
		} else {
			f.status = &status
		}
	}

	return f, issues
}

// parseDueAt accepts RFC 3339 timestamps and bare YYYY-MM-DD dates. Both are
// normalized to UTC; a bare date means midnight UTC.
func parseDueAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("must be RFC 3339 or YYYY-MM-DD")
}
