package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// CreateEventInput holds the parameters for creating an event.
type CreateEventInput struct {
	SubjectID   uuid.UUID
	Name        string
	Description *string
	DueAt       time.Time
	Status      *domain.EventStatus
}

// Validate checks all fields and collects all errors.
func (i CreateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 150 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 150 characters"})
	}

	if i.DueAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_at", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, PASSED or FAILED"})
	}
	if i.Description != nil && len(strings.TrimSpace(*i.Description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEventInput holds the parameters for updating an event.
type UpdateEventInput struct {
	EventID     uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	DueAt       *time.Time
	Status      *domain.EventStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.DueAt == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 150 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 150 characters"})
		}
	}
	if i.DueAt != nil && i.DueAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_at", Message: "must be a valid timestamp"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be PENDING, PASSED or FAILED"})
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
