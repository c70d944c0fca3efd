package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// AuthResult carries the outcome of registration or login.
type AuthResult struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   time.Duration
}

// Register creates a new employee account and issues its first access
// token. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("user.Register hash password: %w", err)
	}

	// The duplicate check and insert run in one transaction; the partial
	// unique index on email backs the check against racing registrations.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.users.GetByEmail(txCtx, input.Email)
		if err == nil {
			return domain.ErrAlreadyExists
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check email: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
			Role:         domain.UserRoleEmployee,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("user.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	result, err := s.issueToken(created)
	if err != nil {
		return nil, fmt.Errorf("user.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return result, nil
}

func (s *Service) issueToken(u *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:        u,
		AccessToken: token,
		ExpiresIn:   s.cfg.AccessTokenTTL,
	}, nil
}
