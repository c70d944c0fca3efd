package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Summary(ctx context.Context, days int) (*domain.DashboardSummary, error)
}

// DashboardHandler serves the dashboard summary endpoint.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// noDataLabel is rendered for the dominant categories of an empty window.
const noDataLabel = "no data"

type summaryResponse struct {
	EntryCount         int     `json:"entryCount"`
	DominantMood       string  `json:"dominantMood"`
	DominantComplexity string  `json:"dominantComplexity"`
	AvgEnergy          float64 `json:"avgEnergy"`
	AvgSatisfaction    float64 `json:"avgSatisfaction"`
}

// Summary handles GET /api/v1/dashboard?days=N.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), intQuery(r, "days"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := summaryResponse{
		EntryCount:         summary.EntryCount,
		DominantMood:       noDataLabel,
		DominantComplexity: noDataLabel,
		AvgEnergy:          summary.AvgEnergy,
		AvgSatisfaction:    summary.AvgSatisfaction,
	}
	if summary.DominantMood != nil {
		resp.DominantMood = summary.DominantMood.String()
	}
	if summary.DominantComplexity != nil {
		resp.DominantComplexity = summary.DominantComplexity.String()
	}

	writeJSON(w, http.StatusOK, resp)
}
