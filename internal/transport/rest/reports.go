package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Generate(ctx context.Context, input report.GenerateInput) (*domain.VibeReport, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*domain.VibeReport, error)
	ListReports(ctx context.Context) ([]domain.VibeReport, error)
}

// ReportHandler serves vibe report REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

type generateReportRequest struct {
	UserID      *string   `json:"userId,omitempty"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

type reportResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	GeneratedBy string          `json:"generatedBy"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	ReportData  json.RawMessage `json:"reportData"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toReportResponse(rep *domain.VibeReport) reportResponse {
	return reportResponse{
		ID:          rep.ID.String(),
		UserID:      rep.UserID.String(),
		GeneratedBy: rep.GeneratedBy.String(),
		PeriodStart: rep.PeriodStart,
		PeriodEnd:   rep.PeriodEnd,
		ReportData:  rep.ReportData,
		CreatedAt:   rep.CreatedAt,
	}
}

// Generate handles POST /api/v1/reports.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := report.GenerateInput{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	}
	if req.UserID != nil {
		id, err := uuid.Parse(*req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		input.UserID = &id
	}

	rep, err := h.svc.Generate(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// Get handles GET /api/v1/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rep, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.ListReports(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
