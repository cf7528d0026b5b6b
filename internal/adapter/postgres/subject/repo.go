// Package subject implements the Subject repository using PostgreSQL.
// Every operation is scoped by user_id: a subject owned by another user is
// indistinguishable from a missing one (domain.ErrNotFound).
package subject

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

const subjectColumns = "id, user_id, name, description, created_at, updated_at"

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subject repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a subject by primary key with user_id filter.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	query, args, err := builder.
		Select(subjectColumns).
		From("subjects").
		Where(sq.Eq{"id": subjectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scanSubject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", subjectID)
	}

	return s, nil
}

// List returns all subjects for a user ordered by name.
// Returns an empty slice (not nil) when the user has no subjects.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	query, args, err := builder.
		Select(subjectColumns).
		From("subjects").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC, created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*domain.Subject{}
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("list subjects: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	return subjects, nil
}

// Count returns the number of subjects owned by a user.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := builder.
		Select("count(*)").
		From("subjects").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count subjects query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count subjects: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new subject and returns the persisted domain.Subject.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, subject *domain.Subject) (*domain.Subject, error) {
	now := time.Now().UTC()
	id := uuid.New()

	query, args, err := builder.
		Insert("subjects").
		Columns("id", "user_id", "name", "description", "created_at", "updated_at").
		Values(id, userID, subject.Name, ptrStringToPgText(subject.Description), now, now).
		Suffix("RETURNING " + subjectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create subject query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanSubject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", id)
	}

	return created, nil
}

// Update modifies a subject's name and/or description using partial update params.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	update := builder.
		Update("subjects").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": subjectID, "user_id": userID}).
		Suffix("RETURNING " + subjectColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			update = update.Set("description", nil)
		} else {
			update = update.Set("description", *params.Description)
		}
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update subject query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanSubject(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", subjectID)
	}

	return updated, nil
}

// Delete removes a subject. The events FK cascades, so the subject and all
// its events disappear in one atomic statement.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	query, args, err := builder.
		Delete("subjects").
		Where(sq.Eq{"id": subjectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete subject query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "subject", subjectID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", subjectID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanSubject scans one row (pgx.Row or pgx.Rows) into a domain.Subject.
func scanSubject(row pgx.Row) (*domain.Subject, error) {
	var (
		s           domain.Subject
		description pgtype.Text
	)

	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &description, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		s.Description = &description.String
	}

	return &s, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
