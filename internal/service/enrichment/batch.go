package enrichment

import (
	"context"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// BatchItem is one entry to score in a batch run.
type BatchItem struct {
	EntryID uuid.UUID
	Request domain.EnrichmentRequest
}

// BatchResult is the per-item outcome. Exactly one of Score or Err is
// meaningful; Err is nil on success.
type BatchResult struct {
	EntryID uuid.UUID
	Score   float64
	Err     error
}

// EnrichBatch scores items sequentially in input order. A failing item
// does not abort the batch; it is reported in its slot and processing
// continues. The result slice always has the same length and order as
// the input.
func (c *Coordinator) EnrichBatch(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, 0, len(items))

	for _, item := range items {
		score, err := c.enrichOne(ctx, item.EntryID, item.Request)
		results = append(results, BatchResult{
			EntryID: item.EntryID,
			Score:   score,
			Err:     err,
		})
	}

	return results
}

// Scores filters a batch outcome down to the successful scores, in
// batch order, for callers that only care about the values.
func Scores(results []BatchResult) []float64 {
	scores := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			scores = append(scores, r.Score)
		}
	}
	return scores
}
