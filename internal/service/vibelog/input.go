package vibelog

import (
	"time"
	"unicode/utf8"

	"github.com/teampulse/teampulse-backend/internal/domain"
)

// CreateEntryInput holds the parameters for submitting a mood entry.
type CreateEntryInput struct {
	Summary      string
	Mood         domain.Mood
	EnergyLevel  int
	Complexity   domain.Complexity
	Satisfaction float64
}

// Validate checks all fields and collects all errors.
func (i *CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.Summary == "" {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "required"})
	} else if utf8.RuneCountInString(i.Summary) > domain.SummaryMaxLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "too long (max 100)"})
	}

	if !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "invalid value"})
	}

	if i.EnergyLevel < domain.EnergyLevelMin || i.EnergyLevel > domain.EnergyLevelMax {
		errs = append(errs, domain.FieldError{Field: "energy_level", Message: "must be between 1 and 5"})
	}

	if !i.Complexity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "complexity", Message: "invalid value"})
	}

	if i.Satisfaction < domain.SatisfactionMin || i.Satisfaction > domain.SatisfactionMax {
		errs = append(errs, domain.FieldError{Field: "satisfaction", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListEntriesInput holds the optional filters for listing entries.
type ListEntriesInput struct {
	Mood       *domain.Mood
	Complexity *domain.Complexity
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "invalid value"})
	}
	if i.Complexity != nil && !i.Complexity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "complexity", Message: "invalid value"})
	}
	if i.From != nil && i.To != nil && !i.To.After(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
