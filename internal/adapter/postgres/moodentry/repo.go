// Package moodentry implements the MoodEntry repository using PostgreSQL.
package moodentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/teampulse/teampulse-backend/internal/adapter/postgres"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

// Repo provides mood entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mood entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, user_id, summary, mood, energy_level, complexity,
       satisfaction, sentiment_score, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO mood_entries (id, user_id, summary, mood, energy_level, complexity,
                          satisfaction, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM mood_entries
WHERE id = $1 AND deleted_at IS NULL`

const updateScoreSQL = `
UPDATE mood_entries
SET sentiment_score = $2, updated_at = $3
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteSQL = `
UPDATE mood_entries
SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL`

const queryByUserSQL = `
SELECT ` + entryColumns + `
FROM mood_entries
WHERE user_id = $1 AND deleted_at IS NULL
  AND created_at >= $2 AND created_at < $3
ORDER BY created_at ASC`

const queryAllSQL = `
SELECT ` + entryColumns + `
FROM mood_entries
WHERE deleted_at IS NULL
  AND created_at >= $1 AND created_at < $2
ORDER BY created_at ASC`

// Create inserts a new mood entry and returns the persisted domain.MoodEntry.
func (r *Repo) Create(ctx context.Context, e *domain.MoodEntry) (*domain.MoodEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, createSQL,
		e.ID, e.UserID, e.Summary, e.Mood.String(), e.EnergyLevel,
		e.Complexity.String(), e.Satisfaction, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "mood_entry", e.ID)
	}

	created, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, mapError(err, "mood_entry", e.ID)
	}

	return &created, nil
}

// GetByID returns a mood entry by primary key. Soft-deleted entries are
// treated as absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, mapError(err, "mood_entry", id)
	}

	e, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		return nil, mapError(err, "mood_entry", id)
	}

	return &e, nil
}

// UpdateScore sets the sentiment score for an entry.
// Returns domain.ErrNotFound if the entry does not exist or was deleted.
func (r *Repo) UpdateScore(ctx context.Context, id uuid.UUID, score float64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateScoreSQL, id, score, time.Now().UTC())
	if err != nil {
		return mapError(err, "mood_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mood_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete marks an entry as deleted without removing the row.
// Returns domain.ErrNotFound if the entry does not exist or was already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, id, time.Now().UTC())
	if err != nil {
		return mapError(err, "mood_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mood_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// QueryByUser returns one user's entries inside the window, oldest first.
func (r *Repo) QueryByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, queryByUserSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries by user: %w", err)
	}

	return collectEntries(rows)
}

// QueryAll returns all users' entries inside the window, oldest first.
func (r *Repo) QueryAll(ctx context.Context, from, to time.Time) ([]domain.MoodEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, queryAllSQL, from, to)
	if err != nil {
		return nil, fmt.Errorf("query all entries: %w", err)
	}

	return collectEntries(rows)
}

// Find returns entries matching the filter, newest first.
func (r *Repo) Find(ctx context.Context, f Filter) ([]domain.MoodEntry, error) {
	f.normalize()

	sql, args, err := f.build().ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	return collectEntries(rows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.CollectableRow) (domain.MoodEntry, error) {
	var (
		e          domain.MoodEntry
		mood       string
		complexity string
	)

	err := row.Scan(&e.ID, &e.UserID, &e.Summary, &mood, &e.EnergyLevel,
		&complexity, &e.Satisfaction, &e.SentimentScore,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)
	if err != nil {
		return domain.MoodEntry{}, err
	}

	e.Mood = domain.Mood(mood)
	e.Complexity = domain.Complexity(complexity)
	return e, nil
}

func collectEntries(rows pgx.Rows) ([]domain.MoodEntry, error) {
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	if entries == nil {
		entries = []domain.MoodEntry{}
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
