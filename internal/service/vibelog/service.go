// Package vibelog implements the mood entry business logic: submission
// with asynchronous sentiment enrichment, retrieval, listing and
// soft deletion.
package vibelog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/adapter/postgres/moodentry"
	"github.com/teampulse/teampulse-backend/internal/domain"
	"github.com/teampulse/teampulse-backend/internal/service/enrichment"
	"github.com/teampulse/teampulse-backend/internal/worker"
	"github.com/teampulse/teampulse-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e *domain.MoodEntry) (*domain.MoodEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodEntry, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Find(ctx context.Context, f moodentry.Filter) ([]domain.MoodEntry, error)
}

type enricher interface {
	Enrich(ctx context.Context, entryID uuid.UUID, req domain.EnrichmentRequest)
	EnrichBatch(ctx context.Context, items []enrichment.BatchItem) []enrichment.BatchResult
}

type dispatcher interface {
	Submit(task worker.Task) bool
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the mood entry business logic.
type Service struct {
	log        *slog.Logger
	entries    entryRepo
	enricher   enricher
	dispatcher dispatcher
}

// NewService creates a new vibelog service.
func NewService(logger *slog.Logger, entries entryRepo, enricher enricher, dispatcher dispatcher) *Service {
	return &Service{
		log:        logger.With("service", "vibelog"),
		entries:    entries,
		enricher:   enricher,
		dispatcher: dispatcher,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// callerFromCtx extracts the authenticated user and their role.
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
