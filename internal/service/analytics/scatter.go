package analytics

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// EnergySatisfactionScatter projects the caller's entries onto the
// energy/satisfaction plane, one point per entry, in store order. No
// bucketing and no rounding; the points are the raw submitted values.
func (s *Service) EnergySatisfactionScatter(ctx context.Context, days int) ([]domain.ScatterPoint, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	from, to := s.trailingWindow(days)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	points := make([]domain.ScatterPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, domain.ScatterPoint{
			Energy:       e.EnergyLevel,
			Satisfaction: e.Satisfaction,
			Date:         e.CreatedAt,
		})
	}

	return points, nil
}
