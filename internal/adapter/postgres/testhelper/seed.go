package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// SeedUser creates a user row with the given role and returns a filled
// domain.User. The email is derived from the generated ID so repeated calls
// never collide, even across parallel tests sharing one container.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           id,
		Email:        id.String()[:8] + "@example.com",
		Name:         "Test User",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}
