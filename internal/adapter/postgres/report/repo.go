// Package report implements the VibeReport repository using PostgreSQL.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/teampulse/teampulse-backend/internal/adapter/postgres"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

// Repo provides vibe report persistence backed by PostgreSQL.
// Report payloads are stored as JSONB.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reportColumns = `id, user_id, generated_by, period_start, period_end, report_data, created_at`

const createSQL = `
INSERT INTO vibe_reports (id, user_id, generated_by, period_start, period_end, report_data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + reportColumns

const getByIDSQL = `
SELECT ` + reportColumns + `
FROM vibe_reports
WHERE id = $1`

const listByUserSQL = `
SELECT ` + reportColumns + `
FROM vibe_reports
WHERE user_id = $1
ORDER BY created_at DESC`

// Create inserts a new report and returns the persisted domain.VibeReport.
func (r *Repo) Create(ctx context.Context, rep *domain.VibeReport) (*domain.VibeReport, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, createSQL,
		rep.ID, rep.UserID, rep.GeneratedBy, rep.PeriodStart, rep.PeriodEnd,
		rep.ReportData, rep.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, rep.ID)
	}

	created, err := pgx.CollectOneRow(rows, scanReport)
	if err != nil {
		return nil, mapError(err, rep.ID)
	}

	return &created, nil
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VibeReport, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, mapError(err, id)
	}

	rep, err := pgx.CollectOneRow(rows, scanReport)
	if err != nil {
		return nil, mapError(err, id)
	}

	return &rep, nil
}

// ListByUser returns all reports about the given user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VibeReport, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports, err := pgx.CollectRows(rows, scanReport)
	if err != nil {
		return nil, fmt.Errorf("scan reports: %w", err)
	}
	if reports == nil {
		reports = []domain.VibeReport{}
	}

	return reports, nil
}

func scanReport(row pgx.CollectableRow) (domain.VibeReport, error) {
	var rep domain.VibeReport
	err := row.Scan(&rep.ID, &rep.UserID, &rep.GeneratedBy, &rep.PeriodStart,
		&rep.PeriodEnd, &rep.ReportData, &rep.CreatedAt)
	if err != nil {
		return domain.VibeReport{}, err
	}
	return rep, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("vibe_report %s: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("vibe_report %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("vibe_report %s: %w", id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("vibe_report %s: %w", id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("vibe_report %s: %w", id, err)
}
