package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// NewUserID returns a fresh user identifier. Users live in the external
// auth system, so seeding one is just minting a UUID.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedSubject inserts a subject owned by userID and returns it.
func SeedSubject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Subject {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Subject{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subjects (id, user_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, $4, $5)`,
		s.ID, s.UserID, s.Name, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject insert: %v", err)
	}

	return s
}

// SeedEvent inserts a pending event under subjectID and returns it.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, subjectID uuid.UUID, name string, dueAt time.Time) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.Event{
		ID:        uuid.New(),
		SubjectID: subjectID,
		Name:      name,
		DueAt:     dueAt.UTC().Truncate(time.Microsecond),
		Status:    domain.EventStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, subject_id, name, description, due_at, status, created_at, updated_at)
		 VALUES ($1, $2, $3, NULL, $4, $5, $6, $7)`,
		ev.ID, ev.SubjectID, ev.Name, ev.DueAt, string(ev.Status), ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert: %v", err)
	}

	return ev
}
