// Package report implements AI-generated vibe reports: a structured
// summary of a user's mood entries over a period, produced
// synchronously and stored verbatim.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/adapter/ai"
	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reportRepo interface {
	Create(ctx context.Context, rep *domain.VibeReport) (*domain.VibeReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VibeReport, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VibeReport, error)
}

type entryStore interface {
	QueryByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
}

type generator interface {
	Available() bool
	GenerateStructured(ctx context.Context, systemPrompt, userPrompt string, shape ai.Shape) (map[string]any, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vibe report business logic.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	entries entryStore
	gen     generator
}

// NewService creates a new report service.
func NewService(logger *slog.Logger, reports reportRepo, entries entryStore, gen generator) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		entries: entries,
		gen:     gen,
	}
}

func callerFromCtx(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	role := domain.UserRoleEmployee
	if raw, ok := ctxutil.UserRoleFromCtx(ctx); ok && domain.UserRole(raw).IsValid() {
		role = domain.UserRole(raw)
	}
	return userID, role, nil
}
