package analytics

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// OrgMoodDistribution counts moods across all users over the trailing
// days. Unlike the personal histogram, moods with zero occurrences are
// omitted; the organization view shows what was actually reported.
func (s *Service) OrgMoodDistribution(ctx context.Context, days int) ([]domain.MoodShare, error) {
	if _, err := userFromCtx(ctx); err != nil {
		return nil, err
	}

	from, to := s.trailingWindow(days)

	entries, err := s.entries.QueryAll(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	counts := make(map[domain.Mood]int, 5)
	for _, e := range entries {
		counts[e.Mood]++
	}

	total := len(entries)
	out := make([]domain.MoodShare, 0, len(counts))
	for _, m := range domain.AllMoods() {
		n := counts[m]
		if n == 0 {
			continue
		}
		out = append(out, domain.MoodShare{
			Mood:    m,
			Count:   n,
			Percent: round1(float64(n) / float64(total) * 100),
		})
	}

	return out, nil
}
