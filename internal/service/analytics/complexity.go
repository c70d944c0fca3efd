package analytics

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// ComplexitySatisfaction reports the caller's mean satisfaction per
// complexity level over the trailing days. All four levels are always
// present in canonical order; an empty level reports 0.
func (s *Service) ComplexitySatisfaction(ctx context.Context, days int) ([]domain.ComplexityAverage, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	from, to := s.trailingWindow(days)

	entries, err := s.entries.QueryByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	acc := make(map[domain.Complexity]*accumulator, 4)
	for _, c := range domain.AllComplexities() {
		acc[c] = &accumulator{}
	}
	for _, e := range entries {
		acc[e.Complexity].add(e.Satisfaction)
	}

	out := make([]domain.ComplexityAverage, 0, 4)
	for _, c := range domain.AllComplexities() {
		out = append(out, domain.ComplexityAverage{
			Complexity:      c,
			AvgSatisfaction: acc[c].mean(),
			Count:           acc[c].count,
		})
	}

	return out, nil
}
