package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// weekdayOrder lists the buckets Monday first, matching how the charts
// render a work week.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdaySatisfaction reports the caller's mean satisfaction per day of
// the week for the most recent complete week, Monday 00:00 through the
// following Monday exclusive. All seven buckets are always present; an
// empty weekday reports 0.
func (s *Service) WeekdaySatisfaction(ctx context.Context) ([]domain.WeekdayAverage, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	to := weekStart(s.now())
	from := to.AddDate(0, 0, -7)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	acc := make(map[time.Weekday]*accumulator, 7)
	for _, wd := range weekdayOrder {
		acc[wd] = &accumulator{}
	}
	for _, e := range entries {
		acc[e.CreatedAt.UTC().Weekday()].add(e.Satisfaction)
	}

	out := make([]domain.WeekdayAverage, 0, 7)
	for _, wd := range weekdayOrder {
		out = append(out, domain.WeekdayAverage{
			Weekday:         wd,
			Label:           wd.String(),
			AvgSatisfaction: acc[wd].mean(),
			Count:           acc[wd].count,
		})
	}

	return out, nil
}
