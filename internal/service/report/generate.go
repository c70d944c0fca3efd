package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/adapter/ai"
	"github.com/teampulse/teampulse-backend/internal/domain"
)

const reportSystemPrompt = `You are a team wellbeing analyst. You review a period of mood journal entries for one person and write an honest, supportive report.

Ground every statement in the entries you are given. Do not invent events. When the data is thin, say so rather than padding the report.`

var reportShape = ai.Shape{
	Fields: []ai.Field{
		{Name: "overall_vibe", Kind: ai.KindString, Description: "one-line overall assessment"},
		{Name: "summary", Kind: ai.KindString, Description: "2-3 sentence narrative of the period"},
		{Name: "highlights", Kind: ai.KindStringArray, Description: "positive observations"},
		{Name: "concerns", Kind: ai.KindStringArray, Description: "warning signs, may be empty"},
		{Name: "recommendation", Kind: ai.KindString, Description: "one concrete suggestion"},
		{Name: "morale_score", Kind: ai.KindNumber, Description: "overall morale for the period, 0-100"},
	},
}

// GenerateInput holds the parameters for generating a vibe report.
type GenerateInput struct {
	// UserID selects whose entries to report on. Nil means the caller.
	// Reporting on another user requires the admin role.
	UserID      *uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.PeriodStart.IsZero() {
		errs = append(errs, domain.FieldError{Field: "period_start", Message: "required"})
	}
	if i.PeriodEnd.IsZero() {
		errs = append(errs, domain.FieldError{Field: "period_end", Message: "required"})
	}
	if !i.PeriodStart.IsZero() && !i.PeriodEnd.IsZero() && !i.PeriodEnd.After(i.PeriodStart) {
		errs = append(errs, domain.FieldError{Field: "period_end", Message: "must be after period_start"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Generate produces and stores a vibe report for the period. Unlike
// entry scoring this runs synchronously, so an unconfigured provider
// surfaces to the caller instead of being absorbed.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.VibeReport, error) {
	callerID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	subjectID := callerID
	if input.UserID != nil && *input.UserID != callerID {
		if !role.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		subjectID = *input.UserID
	}

	if !s.gen.Available() {
		return nil, ai.ErrNotConfigured
	}

	entries, err := s.entries.QueryByUser(ctx, subjectID, input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, domain.NewValidationError("period", "no entries in period")
	}

	data, err := s.gen.GenerateStructured(ctx, reportSystemPrompt, reportUserPrompt(entries, input), reportShape)
	if err != nil {
		s.log.ErrorContext(ctx, "report generation failed", "error", err.Error())
		return nil, fmt.Errorf("generate report: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	created, err := s.reports.Create(ctx, &domain.VibeReport{
		ID:          uuid.New(),
		UserID:      subjectID,
		GeneratedBy: callerID,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		ReportData:  payload,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	s.log.InfoContext(ctx, "report generated",
		"report_id", created.ID.String(),
		"user_id", subjectID.String(),
		"entries", len(entries),
	)

	return created, nil
}

// reportUserPrompt renders the period's entries into the prompt, one
// line per entry.
func reportUserPrompt(entries []domain.MoodEntry, input GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mood journal from %s to %s, %d entries:\n\n",
		input.PeriodStart.Format("2006-01-02"), input.PeriodEnd.Format("2006-01-02"), len(entries))

	for _, e := range entries {
		fmt.Fprintf(&b, "- %s | mood: %s | energy: %d/5 | complexity: %s | satisfaction: %.1f/10",
			e.CreatedAt.Format("2006-01-02"), e.Mood, e.EnergyLevel, e.Complexity, e.Satisfaction)
		if e.SentimentScore != nil {
			fmt.Fprintf(&b, " | sentiment: %.0f/100", *e.SentimentScore)
		}
		fmt.Fprintf(&b, "\n  %s\n", e.Summary)
	}

	b.WriteString("\nWrite the wellbeing report for this period.")
	return b.String()
}
