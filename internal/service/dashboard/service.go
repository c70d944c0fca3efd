// Package dashboard builds the personal trailing-window summary: entry
// count, mean ratings and the dominant mood and complexity.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/config"
	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/pkg/ctxutil"
)

type entryStore interface {
	QueryByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
}

// Service implements the dashboard summary.
type Service struct {
	log     *slog.Logger
	entries entryStore
	cfg     config.AnalyticsConfig

	now func() time.Time
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, entries entryStore, cfg config.AnalyticsConfig) *Service {
	return &Service{
		log:     logger.With("service", "dashboard"),
		entries: entries,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Summary rolls up the caller's entries over the trailing days. An
// empty window yields a zero-valued summary with nil dominant
// categories rather than an error; the transport layer renders the
// placeholder label.
func (s *Service) Summary(ctx context.Context, days int) (*domain.DashboardSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if days <= 0 {
		days = s.cfg.SummaryWindowDays
	}
	to := s.now().UTC()
	from := to.AddDate(0, 0, -days)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	summary := &domain.DashboardSummary{EntryCount: len(entries)}
	if len(entries) == 0 {
		return summary, nil
	}

	var energySum, satisfactionSum float64
	moodCounts := make(map[domain.Mood]int, 5)
	complexityCounts := make(map[domain.Complexity]int, 4)
	for _, e := range entries {
		energySum += float64(e.EnergyLevel)
		satisfactionSum += e.Satisfaction
		moodCounts[e.Mood]++
		complexityCounts[e.Complexity]++
	}

	n := float64(len(entries))
	summary.AvgEnergy = round1(energySum / n)
	summary.AvgSatisfaction = round1(satisfactionSum / n)
	summary.DominantMood = dominantMood(moodCounts)
	summary.DominantComplexity = dominantComplexity(complexityCounts)

	return summary, nil
}

// dominantMood picks the most frequent mood. Ties resolve to the mood
// that comes first in canonical enumeration order, which keeps the
// result deterministic regardless of map iteration.
func dominantMood(counts map[domain.Mood]int) *domain.Mood {
	var winner *domain.Mood
	best := 0
	for _, m := range domain.AllMoods() {
		if counts[m] > best {
			m := m
			winner = &m
			best = counts[m]
		}
	}
	return winner
}

func dominantComplexity(counts map[domain.Complexity]int) *domain.Complexity {
	var winner *domain.Complexity
	best := 0
	for _, c := range domain.AllComplexities() {
		if counts[c] > best {
			c := c
			winner = &c
			best = counts[c]
		}
	}
	return winner
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
