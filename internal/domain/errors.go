package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// Pipeline sentinels. ErrPlanningUnavailable means the planning service
	// was unreachable or timed out; the command is safe to retry because the
	// planning call mutates nothing. ErrPlanRejected means the candidate plan
	// failed structural validation and never reached execution.
	ErrPlanningUnavailable = errors.New("planning service unavailable")
	ErrPlanRejected        = errors.New("plan rejected")
	ErrSecurityViolation   = errors.New("security violation")
	ErrAmbiguousReference  = errors.New("ambiguous reference")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ActionIssue pins a structural problem to one action of a candidate plan.
type ActionIssue struct {
	Index   int
	Field   string
	Message string
}

// PlanValidationError rejects a candidate plan as a whole. It names every
// offending action and field; validation never accepts a plan partially.
type PlanValidationError struct {
	Issues []ActionIssue
}

func (e *PlanValidationError) Error() string {
	if len(e.Issues) == 1 {
		i := e.Issues[0]
		return fmt.Sprintf("plan rejected: action %d, %s — %s", i.Index, i.Field, i.Message)
	}
	return fmt.Sprintf("plan rejected: %d issues", len(e.Issues))
}

func (e *PlanValidationError) Unwrap() error { return ErrPlanRejected }
