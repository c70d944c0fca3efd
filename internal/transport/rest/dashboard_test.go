package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

type dashboardServiceMock struct {
	summaryFunc func(ctx context.Context, days int) (*domain.DashboardSummary, error)
}

func (m *dashboardServiceMock) Summary(ctx context.Context, days int) (*domain.DashboardSummary, error) {
	return m.summaryFunc(ctx, days)
}

func TestDashboardSummary_EmptyWindowPlaceholders(t *testing.T) {
	t.Parallel()

	h := NewDashboardHandler(&dashboardServiceMock{
		summaryFunc: func(_ context.Context, _ int) (*domain.DashboardSummary, error) {
			return &domain.DashboardSummary{EntryCount: 0}, nil
		},
	}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp summaryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.EntryCount != 0 {
		t.Errorf("expected 0 entries, got %d", resp.EntryCount)
	}
	if resp.DominantMood != noDataLabel {
		t.Errorf("expected mood placeholder %q, got %q", noDataLabel, resp.DominantMood)
	}
	if resp.DominantComplexity != noDataLabel {
		t.Errorf("expected complexity placeholder %q, got %q", noDataLabel, resp.DominantComplexity)
	}
}

func TestDashboardSummary_PassesDaysAndRendersCategories(t *testing.T) {
	t.Parallel()

	mood := domain.MoodExcited
	complexity := domain.ComplexityHard
	var gotDays int

	h := NewDashboardHandler(&dashboardServiceMock{
		summaryFunc: func(_ context.Context, days int) (*domain.DashboardSummary, error) {
			gotDays = days
			return &domain.DashboardSummary{
				EntryCount:         12,
				DominantMood:       &mood,
				DominantComplexity: &complexity,
				AvgEnergy:          3.4,
				AvgSatisfaction:    7.8,
			}, nil
		},
	}, slog.New(slog.DiscardHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?days=14", nil)
	rec := httptest.NewRecorder()

	h.Summary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotDays != 14 {
		t.Errorf("expected days=14 passed through, got %d", gotDays)
	}

	var resp summaryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.DominantMood != "excited" {
		t.Errorf("expected dominant mood 'excited', got %q", resp.DominantMood)
	}
	if resp.DominantComplexity != "hard" {
		t.Errorf("expected dominant complexity 'hard', got %q", resp.DominantComplexity)
	}
	if resp.AvgEnergy != 3.4 || resp.AvgSatisfaction != 7.8 {
		t.Errorf("unexpected averages: %+v", resp)
	}
}
