package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bounds for MoodEntry fields. Values outside these ranges are rejected
// at the service boundary and enforced by check constraints in storage.
const (
	SummaryMaxLen = 100

	EnergyLevelMin = 1
	EnergyLevelMax = 5

	SatisfactionMin = 1.0
	SatisfactionMax = 10.0

	SentimentScoreMin = 0.0
	SentimentScoreMax = 100.0
)

// MoodEntry is a single user-submitted mood record. SentimentScore is nil
// until the enrichment pipeline attaches a score; a score is never reset
// back to nil once written.
type MoodEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Summary      string
	Mood         Mood
	EnergyLevel  int
	Complexity   Complexity
	Satisfaction float64

	SentimentScore *float64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted returns true if the entry has been soft-deleted.
func (e *MoodEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// IsScored returns true if enrichment has attached a sentiment score.
func (e *MoodEntry) IsScored() bool {
	return e.SentimentScore != nil
}

// EnrichmentRequest carries the snapshot of entry fields handed to the
// inference provider. It is copied from the entry at dispatch time and
// never re-read from storage, so scoring reflects the entry as submitted.
type EnrichmentRequest struct {
	UserID       uuid.UUID
	Summary      string
	Mood         Mood
	EnergyLevel  int
	Complexity   Complexity
	Satisfaction float64
}

// SnapshotForEnrichment builds the EnrichmentRequest for an entry.
func (e *MoodEntry) SnapshotForEnrichment() EnrichmentRequest {
	return EnrichmentRequest{
		UserID:       e.UserID,
		Summary:      e.Summary,
		Mood:         e.Mood,
		EnergyLevel:  e.EnergyLevel,
		Complexity:   e.Complexity,
		Satisfaction: e.Satisfaction,
	}
}

// ValidSentimentScore reports whether a provider-returned score lies in
// the storable range. Out-of-range values are rejected, never clamped.
func ValidSentimentScore(score float64) bool {
	return score >= SentimentScoreMin && score <= SentimentScoreMax
}

// AggregationWindow describes one aggregation query: a [From, To) time
// range and an optional owner filter (nil UserID means all users).
// It is never persisted.
type AggregationWindow struct {
	From   time.Time
	To     time.Time
	UserID *uuid.UUID
}

// Contains reports whether t falls inside the half-open window.
func (w AggregationWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}
