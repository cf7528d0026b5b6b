package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a dated task, exam, or deadline belonging to exactly one Subject.
// Ownership is transitive: an event belongs to whoever owns its subject, and
// an event cannot outlive its subject (subject deletion cascades).
type Event struct {
	ID          uuid.UUID
	SubjectID   uuid.UUID
	Name        string
	Description *string
	DueAt       time.Time
	Status      EventStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue reports whether the event is still pending past its due date.
func (e *Event) IsOverdue(now time.Time) bool {
	return e.Status == EventStatusPending && e.DueAt.Before(now)
}

// EventUpdateParams carries a partial update. nil means "don't change";
// for Description, a pointer to "" clears the value.
type EventUpdateParams struct {
	Name        *string
	Description *string
	DueAt       *time.Time
	Status      *EventStatus
}
