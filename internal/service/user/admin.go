package user

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/pkg/ctxutil"
)

// ListUsers returns the full roster. Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	raw, _ := ctxutil.UserRoleFromCtx(ctx)
	if !domain.UserRole(raw).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
