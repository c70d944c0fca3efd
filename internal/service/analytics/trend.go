package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// DailyEnergyTrend reports the caller's mean energy per calendar day
// over the trailing days. Only days that actually hold entries appear;
// gaps are left to the renderer, not zero-filled.
func (s *Service) DailyEnergyTrend(ctx context.Context, days int) ([]domain.TrendPoint, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	from, to := s.trailingWindow(days)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	acc := make(map[time.Time]*accumulator)
	for _, e := range entries {
		day := dayStart(e.CreatedAt)
		a, ok := acc[day]
		if !ok {
			a = &accumulator{}
			acc[day] = a
		}
		a.add(float64(e.EnergyLevel))
	}

	points := make([]domain.TrendPoint, 0, len(acc))
	for day, a := range acc {
		points = append(points, domain.TrendPoint{
			Date:      day,
			AvgEnergy: a.mean(),
			Count:     a.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}
