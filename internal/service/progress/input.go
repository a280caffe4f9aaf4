package progress

import (
	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

const maxBulkItems = 100

// UpdateProgressInput holds the parameters for updating progress on one
// problem. Nil fields are left untouched; completion fields may be
// overridden by derivation (see derive.go).
type UpdateProgressInput struct {
	ProblemID        uuid.UUID
	Status           *domain.ProgressStatus
	IsCompleted      *bool
	Notes            *string
	SolutionCode     *string
	TimeSpentMinutes *int
	IsBookmarked     *bool
	DifficultyRating *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.ProblemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "problem_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.TimeSpentMinutes != nil && *i.TimeSpentMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_minutes", Message: "must be non-negative"})
	}
	if i.DifficultyRating != nil && (*i.DifficultyRating < 1 || *i.DifficultyRating > 5) {
		errs = append(errs, domain.FieldError{Field: "difficulty_rating", Message: "must be between 1 and 5"})
	}
	if i.Notes != nil && len(*i.Notes) > 10_000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}
	if i.SolutionCode != nil && len(*i.SolutionCode) > 50_000 {
		errs = append(errs, domain.FieldError{Field: "solution_code", Message: "max 50000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BulkUpdateInput holds the parameters for a bulk progress update.
// Items are applied independently; shape errors in one item do not block
// the others, but an empty or oversized batch is rejected as a whole.
type BulkUpdateInput struct {
	Items []UpdateProgressInput
}

// Validate checks the batch shape only. Per-item validation happens
// during application so each item gets its own outcome.
func (i *BulkUpdateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "required (at least 1)"})
	} else if len(i.Items) > maxBulkItems {
		errs = append(errs, domain.FieldError{Field: "items", Message: "too many (max 100)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
