package domain

// EventStatus represents the outcome state of an event.
type EventStatus string

const (
	EventStatusPending EventStatus = "PENDING"
	EventStatusPassed  EventStatus = "PASSED"
	EventStatusFailed  EventStatus = "FAILED"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusPassed, EventStatusFailed:
		return true
	}
	return false
}

// ActionKind identifies one mutation variant in the closed action schema.
// The planner may request nothing outside this set.
type ActionKind string

const (
	ActionCreateSubject    ActionKind = "CREATE_SUBJECT"
	ActionUpdateSubject    ActionKind = "UPDATE_SUBJECT"
	ActionDeleteSubject    ActionKind = "DELETE_SUBJECT"
	ActionCreateEvent      ActionKind = "CREATE_EVENT"
	ActionUpdateEvent      ActionKind = "UPDATE_EVENT"
	ActionDeleteEvent      ActionKind = "DELETE_EVENT"
	ActionBulkDeleteEvents ActionKind = "BULK_DELETE_EVENTS"
)

func (k ActionKind) String() string { return string(k) }

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionCreateSubject, ActionUpdateSubject, ActionDeleteSubject,
		ActionCreateEvent, ActionUpdateEvent, ActionDeleteEvent,
		ActionBulkDeleteEvents:
		return true
	}
	return false
}

// ActionOutcome is the per-action execution result.
type ActionOutcome string

const (
	ActionOutcomeSucceeded ActionOutcome = "SUCCEEDED"
	ActionOutcomeFailed    ActionOutcome = "FAILED"
)

func (o ActionOutcome) String() string { return string(o) }

// PlanStatus is the overall outcome of a command.
//
// REJECTED is distinct from FAILED: a rejected plan never reached execution
// (schema or security violation), while FAILED means execution was attempted
// and every action failed.
type PlanStatus string

const (
	PlanStatusSucceeded          PlanStatus = "SUCCEEDED"
	PlanStatusPartiallySucceeded PlanStatus = "PARTIALLY_SUCCEEDED"
	PlanStatusFailed             PlanStatus = "FAILED"
	PlanStatusRejected           PlanStatus = "REJECTED"
)

func (s PlanStatus) String() string { return string(s) }
