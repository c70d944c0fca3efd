package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// VibeReport is an AI-generated period report over a user's mood entries.
// ReportData holds the structured report payload as produced by the
// inference provider, stored verbatim as JSON.
type VibeReport struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	GeneratedBy uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	ReportData  json.RawMessage
	CreatedAt   time.Time
}
