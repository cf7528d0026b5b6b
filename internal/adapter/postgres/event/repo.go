// Package event implements the Event repository using PostgreSQL.
// Events are owned transitively through their subject, so every operation
// joins against subjects and filters by user_id inside the statement itself.
// A concurrent subject deletion therefore makes the mutation affect zero
// rows instead of leaking across users.
package event

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartfocus/smartfocus-backend/internal/adapter/postgres"
	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = "e.id, e.subject_id, e.name, e.description, e.due_at, e.status, e.created_at, e.updated_at"

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for ownership-scoped writes
// ---------------------------------------------------------------------------

const createEventSQL = `
INSERT INTO events (id, subject_id, name, description, due_at, status, created_at, updated_at)
SELECT $1, s.id, $3, $4, $5, $6, $7, $7
FROM subjects s
WHERE s.id = $2 AND s.user_id = $8
RETURNING id, subject_id, name, description, due_at, status, created_at, updated_at`

const deleteEventSQL = `
DELETE FROM events e
USING subjects s
WHERE e.id = $1 AND e.subject_id = s.id AND s.user_id = $2`

const deleteBySubjectSQL = `
DELETE FROM events e
USING subjects s
WHERE e.subject_id = s.id AND s.id = $1 AND s.user_id = $2`

const subjectOwnedSQL = `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1 AND user_id = $2)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an event by primary key, verifying transitive ownership.
// Returns domain.ErrNotFound if the event does not exist or its subject
// belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, eventID uuid.UUID) (*domain.Event, error) {
	query, args, err := builder.
		Select(eventColumns).
		From("events e").
		Join("subjects s ON e.subject_id = s.id").
		Where(sq.Eq{"e.id": eventID, "s.user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get event query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ev, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	return ev, nil
}

// ListBySubject returns all events of one subject ordered by due date.
// Returns domain.ErrNotFound if the subject is not owned by the user;
// an owned subject with no events yields an empty slice (not nil).
func (r *Repo) ListBySubject(ctx context.Context, userID, subjectID uuid.UUID) ([]*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// Distinguish "no events" from "not your subject".
	var owned bool
	if err := q.QueryRow(ctx, subjectOwnedSQL, subjectID, userID).Scan(&owned); err != nil {
		return nil, fmt.Errorf("check subject ownership: %w", err)
	}
	if !owned {
		return nil, fmt.Errorf("subject %s: %w", subjectID, domain.ErrNotFound)
	}

	query, args, err := builder.
		Select(eventColumns).
		From("events e").
		Where(sq.Eq{"e.subject_id": subjectID}).
		OrderBy("e.due_at ASC, e.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new event under a subject the user owns.
// Returns domain.ErrNotFound if the subject vanished or is foreign: the
// insert selects from subjects, so the ownership check and the insert are
// one statement.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, event *domain.Event) (*domain.Event, error) {
	now := time.Now().UTC()
	id := uuid.New()

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanEvent(q.QueryRow(ctx, createEventSQL,
		id,
		event.SubjectID,
		event.Name,
		ptrStringToPgText(event.Description),
		event.DueAt,
		string(event.Status),
		now,
		userID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}

	return created, nil
}

// Update modifies an event using partial update params.
// Returns domain.ErrNotFound if the event does not exist or is not owned
// (transitively) by the user.
func (r *Repo) Update(ctx context.Context, userID, eventID uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	update := builder.
		Update("events").
		Set("updated_at", time.Now().UTC()).
		Where("id = ? AND subject_id IN (SELECT id FROM subjects WHERE user_id = ?)", eventID, userID).
		Suffix("RETURNING id, subject_id, name, description, due_at, status, created_at, updated_at")

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			update = update.Set("description", nil)
		} else {
			update = update.Set("description", *params.Description)
		}
	}
	if params.DueAt != nil {
		update = update.Set("due_at", *params.DueAt)
	}
	if params.Status != nil {
		update = update.Set("status", string(*params.Status))
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "event", eventID)
	}

	return updated, nil
}

// Delete removes an event.
// Returns domain.ErrNotFound if the event does not exist or is not owned
// (transitively) by the user.
func (r *Repo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEventSQL, eventID, userID)
	if err != nil {
		return postgres.MapError(err, "event", eventID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// DeleteBySubject removes all events of one owned subject, keeping the
// subject itself. Returns the number of deleted events; zero is not an
// error. Returns domain.ErrNotFound if the subject is foreign or missing.
func (r *Repo) DeleteBySubject(ctx context.Context, userID, subjectID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// An empty result set must be distinguishable from a foreign subject.
	var owned bool
	if err := q.QueryRow(ctx, subjectOwnedSQL, subjectID, userID).Scan(&owned); err != nil {
		return 0, fmt.Errorf("check subject ownership: %w", err)
	}
	if !owned {
		return 0, fmt.Errorf("subject %s: %w", subjectID, domain.ErrNotFound)
	}

	tag, err := q.Exec(ctx, deleteBySubjectSQL, subjectID, userID)
	if err != nil {
		return 0, postgres.MapError(err, "event", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanEvent scans one row (pgx.Row or pgx.Rows) into a domain.Event.
func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		ev          domain.Event
		description pgtype.Text
		status      string
	)

	if err := row.Scan(&ev.ID, &ev.SubjectID, &ev.Name, &description, &ev.DueAt, &status, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		ev.Description = &description.String
	}
	ev.Status = domain.EventStatus(status)

	return &ev, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
