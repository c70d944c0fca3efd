package vibelog

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/adapter/postgres/moodentry"
	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/internal/service/enrichment"
)

// rescoreBatchLimit bounds one rescore pass. Entries beyond it are
// picked up by the next invocation.
const rescoreBatchLimit = 200

// RescoreResult summarizes one batch rescore pass.
type RescoreResult struct {
	Processed int
	Scored    int
	Failed    int
}

// RescoreUnscored re-runs sentiment scoring for entries that never
// received a score. Admin only. The batch runs synchronously so the
// caller sees the per-pass outcome; individual failures are counted,
// not surfaced.
func (s *Service) RescoreUnscored(ctx context.Context) (*RescoreResult, error) {
	_, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !role.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	entries, err := s.entries.Find(ctx, moodentry.Filter{
		Unscored: true,
		Limit:    rescoreBatchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("find unscored entries: %w", err)
	}

	items := make([]enrichment.BatchItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, enrichment.BatchItem{
			EntryID: e.ID,
			Request: e.SnapshotForEnrichment(),
		})
	}

	results := s.enricher.EnrichBatch(ctx, items)
	scored := len(enrichment.Scores(results))

	s.log.InfoContext(ctx, "batch rescore finished",
		"processed", len(results),
		"scored", scored,
		"failed", len(results)-scored,
	)

	return &RescoreResult{
		Processed: len(results),
		Scored:    scored,
		Failed:    len(results) - scored,
	}, nil
}
