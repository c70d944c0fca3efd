package vibelog

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/adapter/postgres/moodentry"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

// ListEntries returns the caller's entries, newest first, filtered by
// the optional mood, complexity and time range.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]domain.MoodEntry, error) {
	userID, _, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.Find(ctx, moodentry.Filter{
		UserID:     &userID,
		Mood:       input.Mood,
		Complexity: input.Complexity,
		From:       input.From,
		To:         input.To,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	return entries, nil
}

// ListAllEntries returns entries across all users. Admin only.
func (s *Service) ListAllEntries(ctx context.Context, input ListEntriesInput) ([]domain.MoodEntry, error) {
	_, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !role.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.Find(ctx, moodentry.Filter{
		Mood:       input.Mood,
		Complexity: input.Complexity,
		From:       input.From,
		To:         input.To,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}

	return entries, nil
}
