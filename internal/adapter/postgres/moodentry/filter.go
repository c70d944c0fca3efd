package moodentry

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// Filter defines parameters for listing mood entries.
type Filter struct {
	// UserID restricts results to one author. nil means all users.
	UserID *uuid.UUID

	// Mood filters entries with the given mood.
	Mood *domain.Mood

	// Complexity filters entries with the given task complexity.
	Complexity *domain.Complexity

	// From/To bound created_at (inclusive from, exclusive to).
	From *time.Time
	To   *time.Time

	// Unscored keeps only entries whose sentiment score is still null.
	Unscored bool

	// Limit is the maximum number of entries to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of entries to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// build assembles the SELECT for the current filter values.
func (f *Filter) build() sq.SelectBuilder {
	b := sq.Select(entryColumns).
		From("mood_entries").
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar)

	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Mood != nil {
		b = b.Where(sq.Eq{"mood": f.Mood.String()})
	}
	if f.Complexity != nil {
		b = b.Where(sq.Eq{"complexity": f.Complexity.String()})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.Lt{"created_at": *f.To})
	}
	if f.Unscored {
		b = b.Where(sq.Eq{"sentiment_score": nil})
	}

	return b.
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
}
