package vibelog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// CreateEntry persists a new mood entry and hands it to the enrichment
// pipeline. The entry is returned unscored; the sentiment score is
// attached asynchronously and a failed or skipped enrichment never
// surfaces to the caller.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.MoodEntry, error) {
	userID, _, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.MoodEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Summary:      input.Summary,
		Mood:         input.Mood,
		EnergyLevel:  input.EnergyLevel,
		Complexity:   input.Complexity,
		Satisfaction: input.Satisfaction,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.dispatchEnrichment(ctx, created)

	return created, nil
}

// dispatchEnrichment queues the scoring task. The snapshot is taken
// before queueing so the score reflects the entry as submitted even if
// it changes later. The worker runs the task under the pool's lifecycle
// context, not the request context, so the request finishing does not
// cancel scoring.
func (s *Service) dispatchEnrichment(ctx context.Context, entry *domain.MoodEntry) {
	entryID := entry.ID
	req := entry.SnapshotForEnrichment()

	ok := s.dispatcher.Submit(func(taskCtx context.Context) {
		s.enricher.Enrich(taskCtx, entryID, req)
	})
	if !ok {
		// The entry simply stays unscored. Nothing to surface to the
		// client, who has their entry already.
		s.log.WarnContext(ctx, "enrichment not queued: worker queue unavailable",
			"entry_id", entryID.String(),
		)
	}
}
