package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a user-owned academic course or category grouping events.
// UserID never changes after creation.
type Subject struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubjectUpdateParams carries a partial update. nil means "don't change";
// for Description, a pointer to "" clears the value.
type SubjectUpdateParams struct {
	Name        *string
	Description *string
}
