package analytics

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// WeeklyMoodHistogram counts the caller's entries per mood for each of
// the trailing calendar weeks, the current week included. Every
// week carries all five mood categories, zero-filled, so chart axes
// stay stable regardless of the data.
func (s *Service) WeeklyMoodHistogram(ctx context.Context, weeks int) ([]domain.WeekBucket, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if weeks <= 0 {
		weeks = s.cfg.DefaultWeeks
	}

	currentWeek := weekStart(s.now())
	from := currentWeek.AddDate(0, 0, -7*(weeks-1))
	to := currentWeek.AddDate(0, 0, 7)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	buckets := make([]domain.WeekBucket, 0, weeks)
	index := make(map[int64]int, weeks)
	for i := range weeks {
		start := from.AddDate(0, 0, 7*i)
		counts := make([]domain.MoodCount, 0, len(domain.AllMoods()))
		for _, m := range domain.AllMoods() {
			counts = append(counts, domain.MoodCount{Mood: m})
		}
		index[start.Unix()] = i
		buckets = append(buckets, domain.WeekBucket{
			Label:  weekLabel(start),
			Start:  start,
			Counts: counts,
		})
	}

	for _, e := range entries {
		i, ok := index[weekStart(e.CreatedAt).Unix()]
		if !ok {
			continue
		}
		for j := range buckets[i].Counts {
			if buckets[i].Counts[j].Mood == e.Mood {
				buckets[i].Counts[j].Count++
				break
			}
		}
	}

	return buckets, nil
}
