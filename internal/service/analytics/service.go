// Package analytics computes deterministic time-bucketed rollups over
// mood entries: weekly histograms, the monthly energy heatmap,
// correlation views and organization-wide distributions. All rollups
// work on a snapshot of non-deleted entries and never fail on empty
// input.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryStore interface {
	QueryByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
	QueryAll(ctx context.Context, from, to time.Time) ([]domain.MoodEntry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the aggregation rollups.
type Service struct {
	log     *slog.Logger
	entries entryStore
	cfg     config.AnalyticsConfig

	// now is swappable so window arithmetic is testable.
	now func() time.Time
}

// NewService creates a new analytics service.
func NewService(logger *slog.Logger, entries entryStore, cfg config.AnalyticsConfig) *Service {
	return &Service{
		log:     logger.With("service", "analytics"),
		entries: entries,
		cfg:     cfg,
		now:     time.Now,
	}
}

// trailingWindow returns the [from, to) range covering the last days
// calendar days up to now, falling back to the configured default.
func (s *Service) trailingWindow(days int) (time.Time, time.Time) {
	if days <= 0 {
		days = s.cfg.DefaultRangeDays
	}
	to := s.now().UTC()
	return to.AddDate(0, 0, -days), to
}

func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
