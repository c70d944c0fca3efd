package vibelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// GetEntry returns a single entry. Regular users only see their own
// entries; a foreign entry reports not found rather than forbidden so
// entry IDs do not leak across users. Admins see everything.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.MoodEntry, error) {
	userID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	if entry.UserID != userID && !role.IsAdmin() {
		return nil, domain.ErrNotFound
	}

	return entry, nil
}
