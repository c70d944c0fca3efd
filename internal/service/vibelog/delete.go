package vibelog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// DeleteEntry soft-deletes an entry. Owners can delete their own
// entries, admins can delete any. A second delete of the same entry
// reports not found.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, role, err := callerFromCtx(ctx)
	if err != nil {
		return err
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	if entry.UserID != userID && !role.IsAdmin() {
		return domain.ErrNotFound
	}

	if err := s.entries.SoftDelete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		"entry_id", entryID.String(),
		"user_id", entry.UserID.String(),
	)

	return nil
}
