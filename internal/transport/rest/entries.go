package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/internal/service/vibelog"
)

// vibelogService defines the minimal interface needed by EntryHandler.
type vibelogService interface {
	CreateEntry(ctx context.Context, input vibelog.CreateEntryInput) (*domain.MoodEntry, error)
	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.MoodEntry, error)
	ListEntries(ctx context.Context, input vibelog.ListEntriesInput) ([]domain.MoodEntry, error)
	ListAllEntries(ctx context.Context, input vibelog.ListEntriesInput) ([]domain.MoodEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	RescoreUnscored(ctx context.Context) (*vibelog.RescoreResult, error)
}

// EntryHandler serves mood entry REST endpoints.
type EntryHandler struct {
	svc vibelogService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc vibelogService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entries")}
}

type createEntryRequest struct {
	Summary      string  `json:"summary"`
	Mood         string  `json:"mood"`
	EnergyLevel  int     `json:"energyLevel"`
	Complexity   string  `json:"complexity"`
	Satisfaction float64 `json:"satisfaction"`
}

type entryResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Summary        string    `json:"summary"`
	Mood           string    `json:"mood"`
	EnergyLevel    int       `json:"energyLevel"`
	Complexity     string    `json:"complexity"`
	Satisfaction   float64   `json:"satisfaction"`
	SentimentScore *float64  `json:"sentimentScore"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toEntryResponse(e *domain.MoodEntry) entryResponse {
	return entryResponse{
		ID:             e.ID.String(),
		UserID:         e.UserID.String(),
		Summary:        e.Summary,
		Mood:           e.Mood.String(),
		EnergyLevel:    e.EnergyLevel,
		Complexity:     e.Complexity.String(),
		Satisfaction:   e.Satisfaction,
		SentimentScore: e.SentimentScore,
		CreatedAt:      e.CreatedAt,
	}
}

func toEntryList(entries []domain.MoodEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

// Create handles POST /api/v1/entries. The response carries a null
// sentiment score; scoring completes in the background.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), vibelog.CreateEntryInput{
		Summary:      req.Summary,
		Mood:         domain.Mood(req.Mood),
		EnergyLevel:  req.EnergyLevel,
		Complexity:   domain.Complexity(req.Complexity),
		Satisfaction: req.Satisfaction,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Get handles GET /api/v1/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	entry, err := h.svc.GetEntry(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /api/v1/entries with optional mood, complexity,
// from, to, limit and offset query parameters.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryList(entries))
}

// ListAll handles GET /api/v1/admin/entries. Admin only.
func (h *EntryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := h.svc.ListAllEntries(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryList(entries))
}

// Delete handles DELETE /api/v1/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type rescoreResponse struct {
	Processed int `json:"processed"`
	Scored    int `json:"scored"`
	Failed    int `json:"failed"`
}

// Rescore handles POST /api/v1/admin/entries/rescore.
func (h *EntryHandler) Rescore(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RescoreUnscored(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, rescoreResponse{
		Processed: result.Processed,
		Scored:    result.Scored,
		Failed:    result.Failed,
	})
}

func listInputFromQuery(r *http.Request) (vibelog.ListEntriesInput, error) {
	q := r.URL.Query()
	var input vibelog.ListEntriesInput

	if v := q.Get("mood"); v != "" {
		m := domain.Mood(v)
		input.Mood = &m
	}
	if v := q.Get("complexity"); v != "" {
		c := domain.Complexity(v)
		input.Complexity = &c
	}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return input, errInvalidQuery("from")
		}
		input.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return input, errInvalidQuery("to")
		}
		input.To = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, errInvalidQuery("limit")
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return input, errInvalidQuery("offset")
		}
		input.Offset = n
	}

	return input, nil
}

type queryError string

func (e queryError) Error() string { return "invalid query parameter: " + string(e) }

func errInvalidQuery(param string) error { return queryError(param) }
