package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// MonthlyEnergyHeatmap reports the caller's mean energy per calendar
// day of the given month. Every day of the month is present; a day with
// no entries reports mean 0 and count 0.
func (s *Service) MonthlyEnergyHeatmap(ctx context.Context, year int, month time.Month) ([]domain.HeatmapDay, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	daysInMonth := to.AddDate(0, 0, -1).Day()

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	acc := make([]accumulator, daysInMonth)
	for _, e := range entries {
		day := e.CreatedAt.UTC().Day()
		acc[day-1].add(float64(e.EnergyLevel))
	}

	days := make([]domain.HeatmapDay, 0, daysInMonth)
	for i := range daysInMonth {
		days = append(days, domain.HeatmapDay{
			Date:       from.AddDate(0, 0, i),
			MeanEnergy: acc[i].mean(),
			Count:      acc[i].count,
		})
	}

	return days, nil
}
