// Package enrichment implements the sentiment scoring pipeline: the
// coordinator that moves an entry from unscored to scored, and the batch
// processor that drives it over many entries.
package enrichment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// Scorer is the inference provider contract. Available must be cheap;
// Score performs one synchronous provider call.
type Scorer interface {
	Available() bool
	Score(ctx context.Context, req domain.EnrichmentRequest) (float64, error)
}

type scoreStore interface {
	UpdateScore(ctx context.Context, id uuid.UUID, score float64) error
}

// Coordinator orchestrates scoring for single entries. Every failure is
// absorbed here: callers on the ingestion path have already returned to
// their client, so nothing can propagate back to them.
type Coordinator struct {
	log    *slog.Logger
	scorer Scorer
	store  scoreStore
}

// NewCoordinator creates a new enrichment coordinator.
func NewCoordinator(log *slog.Logger, scorer Scorer, store scoreStore) *Coordinator {
	return &Coordinator{
		log:    log.With("service", "enrichment"),
		scorer: scorer,
		store:  store,
	}
}

// Enrich scores one entry and writes the result back. It never returns
// an error; failures are logged and leave the entry unscored. Re-running
// Enrich after a prior success overwrites the score; the Coordinator
// performs no deduplication.
func (c *Coordinator) Enrich(ctx context.Context, entryID uuid.UUID, req domain.EnrichmentRequest) {
	_, _ = c.enrichOne(ctx, entryID, req)
}

// enrichOne is the single-dispatch state machine. It returns the score
// on success so batch callers can collect results; the error return is
// for visibility only, the entry is already in its terminal state for
// this dispatch.
func (c *Coordinator) enrichOne(ctx context.Context, entryID uuid.UUID, req domain.EnrichmentRequest) (float64, error) {
	log := c.log.With(slog.String("entry_id", entryID.String()))

	// Unconfigured provider is the cheap failure path: no provider call,
	// no store call.
	if !c.scorer.Available() {
		log.WarnContext(ctx, "enrichment skipped: scorer not configured")
		return 0, fmt.Errorf("entry %s: scorer not configured", entryID)
	}

	log.InfoContext(ctx, "enrichment dispatch",
		slog.String("mood", req.Mood.String()),
		slog.Int("energy_level", req.EnergyLevel),
	)

	// Exactly one inference attempt per dispatch. Retry, if wanted,
	// belongs to whoever re-issues Enrich.
	score, err := c.scorer.Score(ctx, req)
	if err != nil {
		log.ErrorContext(ctx, "enrichment scoring failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("entry %s: score: %w", entryID, err)
	}

	// Out-of-range scores are rejected, never clamped.
	if !domain.ValidSentimentScore(score) {
		log.ErrorContext(ctx, "enrichment score out of range", slog.Float64("score", score))
		return 0, fmt.Errorf("entry %s: score %v out of range", entryID, score)
	}

	if err := c.store.UpdateScore(ctx, entryID, score); err != nil {
		log.ErrorContext(ctx, "enrichment score write failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("entry %s: update score: %w", entryID, err)
	}

	log.InfoContext(ctx, "enrichment complete", slog.Float64("score", score))
	return score, nil
}
