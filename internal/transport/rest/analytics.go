package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	WeeklyMoodHistogram(ctx context.Context, weeks int) ([]domain.WeekBucket, error)
	MonthlyEnergyHeatmap(ctx context.Context, year int, month time.Month) ([]domain.HeatmapDay, error)
	ComplexitySatisfaction(ctx context.Context, days int) ([]domain.ComplexityAverage, error)
	EnergySatisfactionScatter(ctx context.Context, days int) ([]domain.ScatterPoint, error)
	OrgMoodDistribution(ctx context.Context, days int) ([]domain.MoodShare, error)
	DailyEnergyTrend(ctx context.Context, days int) ([]domain.TrendPoint, error)
	WeekdaySatisfaction(ctx context.Context) ([]domain.WeekdayAverage, error)
}

// AnalyticsHandler serves the aggregation REST endpoints.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type moodCountResponse struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

type weekBucketResponse struct {
	Label  string              `json:"label"`
	Start  string              `json:"start"`
	Counts []moodCountResponse `json:"counts"`
}

// MoodHistogram handles GET /api/v1/analytics/mood-history?weeks=N.
func (h *AnalyticsHandler) MoodHistogram(w http.ResponseWriter, r *http.Request) {
	weeks := intQuery(r, "weeks")

	buckets, err := h.svc.WeeklyMoodHistogram(r.Context(), weeks)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]weekBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		counts := make([]moodCountResponse, 0, len(b.Counts))
		for _, mc := range b.Counts {
			counts = append(counts, moodCountResponse{Mood: mc.Mood.String(), Count: mc.Count})
		}
		out = append(out, weekBucketResponse{
			Label:  b.Label,
			Start:  b.Start.Format("2006-01-02"),
			Counts: counts,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type heatmapDayResponse struct {
	Date       string  `json:"date"`
	MeanEnergy float64 `json:"meanEnergy"`
	Count      int     `json:"count"`
}

// EnergyHeatmap handles GET /api/v1/analytics/energy-heatmap?year=Y&month=M.
func (h *AnalyticsHandler) EnergyHeatmap(w http.ResponseWriter, r *http.Request) {
	year := intQuery(r, "year")
	month := time.Month(intQuery(r, "month"))

	days, err := h.svc.MonthlyEnergyHeatmap(r.Context(), year, month)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]heatmapDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, heatmapDayResponse{
			Date:       d.Date.Format("2006-01-02"),
			MeanEnergy: d.MeanEnergy,
			Count:      d.Count,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type complexityAverageResponse struct {
	Complexity      string  `json:"complexity"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	Count           int     `json:"count"`
}

// ComplexitySatisfaction handles GET /api/v1/analytics/complexity-satisfaction?days=N.
func (h *AnalyticsHandler) ComplexitySatisfaction(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ComplexitySatisfaction(r.Context(), intQuery(r, "days"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]complexityAverageResponse, 0, len(out))
	for _, c := range out {
		resp = append(resp, complexityAverageResponse{
			Complexity:      c.Complexity.String(),
			AvgSatisfaction: c.AvgSatisfaction,
			Count:           c.Count,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type scatterPointResponse struct {
	Energy       int     `json:"energy"`
	Satisfaction float64 `json:"satisfaction"`
	Date         string  `json:"date"`
}

// Scatter handles GET /api/v1/analytics/energy-satisfaction?days=N.
func (h *AnalyticsHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.EnergySatisfactionScatter(r.Context(), intQuery(r, "days"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]scatterPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, scatterPointResponse{
			Energy:       p.Energy,
			Satisfaction: p.Satisfaction,
			Date:         p.Date.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type moodShareResponse struct {
	Mood    string  `json:"mood"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// OrgDistribution handles GET /api/v1/analytics/org-mood?days=N.
func (h *AnalyticsHandler) OrgDistribution(w http.ResponseWriter, r *http.Request) {
	shares, err := h.svc.OrgMoodDistribution(r.Context(), intQuery(r, "days"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]moodShareResponse, 0, len(shares))
	for _, s := range shares {
		resp = append(resp, moodShareResponse{Mood: s.Mood.String(), Count: s.Count, Percent: s.Percent})
	}
	writeJSON(w, http.StatusOK, resp)
}

type trendPointResponse struct {
	Date      string  `json:"date"`
	AvgEnergy float64 `json:"avgEnergy"`
	Count     int     `json:"count"`
}

// EnergyTrend handles GET /api/v1/analytics/energy-trend?days=N.
func (h *AnalyticsHandler) EnergyTrend(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.DailyEnergyTrend(r.Context(), intQuery(r, "days"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]trendPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, trendPointResponse{
			Date:      p.Date.Format("2006-01-02"),
			AvgEnergy: p.AvgEnergy,
			Count:     p.Count,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type weekdayAverageResponse struct {
	Weekday         string  `json:"weekday"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
	Count           int     `json:"count"`
}

// WeekdaySatisfaction handles GET /api/v1/analytics/weekday-satisfaction.
func (h *AnalyticsHandler) WeekdaySatisfaction(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.WeekdaySatisfaction(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]weekdayAverageResponse, 0, len(out))
	for _, wd := range out {
		resp = append(resp, weekdayAverageResponse{
			Weekday:         wd.Label,
			AvgSatisfaction: wd.AvgSatisfaction,
			Count:           wd.Count,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// intQuery parses an integer query parameter, returning 0 when absent
// or malformed so the service applies its default.
func intQuery(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
