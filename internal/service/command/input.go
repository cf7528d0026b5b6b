package command

import (
	"fmt"
	"strings"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// ExecuteCommandInput holds the parameters for executing a natural-language
// command.
type ExecuteCommandInput struct {
	Text string
}

// Validate checks all fields and collects all errors. maxLen caps the raw
// command text.
func (i ExecuteCommandInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > maxLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxLen)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
