// Package user implements account management: registration, password
// login with JWT issuance, profile lookup and the admin roster.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token issuance interface needed by the service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
}

// Service implements user account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
		jwt:   jwt,
		cfg:   cfg,
	}
}
