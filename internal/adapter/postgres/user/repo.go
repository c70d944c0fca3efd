// Package user implements the User repository using PostgreSQL.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, password_hash, role, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND deleted_at IS NULL`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND deleted_at IS NULL`

const listSQL = `
SELECT ` + userColumns + `
FROM users
WHERE deleted_at IS NULL
ORDER BY created_at ASC`

// Create inserts a new user and returns the persisted domain.User.
// Duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, createSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}

	created, err := pgx.CollectOneRow(rows, scanUser)
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}

	return &created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, mapError(err, "user", id)
	}

	u, err := pgx.CollectOneRow(rows, scanUser)
	if err != nil {
		return nil, mapError(err, "user", id)
	}

	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByEmailSQL, email)
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}

	u, err := pgx.CollectOneRow(rows, scanUser)
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}

	return &u, nil
}

// List returns all active users, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var (
		u    domain.User
		role string
	)

	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role,
		&u.CreatedAt, &u.UpdatedAt, &u.DeletedAt)
	if err != nil {
		return domain.User{}, err
	}

	u.Role = domain.UserRole(role)
	return u, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

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

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
