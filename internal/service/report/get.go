package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// GetReport returns one report. Visible to its subject, its generator
// and admins; anyone else sees not found.
func (s *Service) GetReport(ctx context.Context, reportID uuid.UUID) (*domain.VibeReport, error) {
	callerID, role, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	if rep.UserID != callerID && rep.GeneratedBy != callerID && !role.IsAdmin() {
		return nil, domain.ErrNotFound
	}

	return rep, nil
}

// ListReports returns the caller's reports, newest first.
func (s *Service) ListReports(ctx context.Context) ([]domain.VibeReport, error) {
	callerID, _, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return reports, nil
}
