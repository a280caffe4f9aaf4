package progress

import (
	"time"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// deriveFields turns a validated input into store upsert params, applying
// the completion rules:
//
//   - a solved status forces isCompleted=true and completedAt=now,
//     overriding caller-supplied values;
//   - otherwise an explicit isCompleted=false clears completedAt;
//   - lastAttemptedAt is always set to now;
//   - attempts grows by one only when the incoming status is not
//     not-started and the pair had no record yet (or was still
//     not-started). Re-solving an already started problem does not
//     inflate the counter.
//
// existing is the current record, nil when the pair has none.
func deriveFields(existing *domain.ProgressRecord, input UpdateProgressInput, now time.Time) domain.ProgressUpsertParams {
	params := domain.ProgressUpsertParams{
		IsCompleted:      input.IsCompleted,
		Status:           input.Status,
		Notes:            input.Notes,
		SolutionCode:     input.SolutionCode,
		TimeSpentMinutes: input.TimeSpentMinutes,
		IsBookmarked:     input.IsBookmarked,
		DifficultyRating: input.DifficultyRating,
		LastAttemptedAt:  now,
	}

	switch {
	case input.Status != nil && input.Status.IsSolved():
		completed := true
		params.IsCompleted = &completed
		completedAt := now
		params.CompletedAt = &completedAt
	case input.IsCompleted != nil && !*input.IsCompleted:
		params.ClearCompletedAt = true
	}

	if input.Status != nil && *input.Status != domain.StatusNotStarted {
		if existing == nil || existing.Status == domain.StatusNotStarted {
			params.AttemptIncrement = 1
		}
	}

	return params
}
