package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressRecord is the per-(user, problem) mutable progress state.
// Exactly one record may exist per pair; the store enforces a unique
// index on (UserID, ProblemID). Records are created lazily on the first
// update and never deleted; absence means the default state returned by
// DefaultProgress.
type ProgressRecord struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ProblemID        uuid.UUID
	IsCompleted      bool
	Status           ProgressStatus
	CompletedAt      *time.Time
	Notes            *string
	SolutionCode     *string
	TimeSpentMinutes *int
	Attempts         int
	LastAttemptedAt  *time.Time
	IsBookmarked     bool
	DifficultyRating *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultProgress is the implied state of a (user, problem) pair that has
// no persisted record yet: not started, zero attempts, not bookmarked.
func DefaultProgress(userID, problemID uuid.UUID) ProgressRecord {
	return ProgressRecord{
		UserID:    userID,
		ProblemID: problemID,
		Status:    StatusNotStarted,
	}
}

// ProgressUpsertParams carries a partial progress update. Nil fields keep
// the stored value (or the column default on first insert). The update
// engine computes all derived fields before handing the params to the store.
type ProgressUpsertParams struct {
	IsCompleted      *bool
	Status           *ProgressStatus
	CompletedAt      *time.Time
	ClearCompletedAt bool
	Notes            *string
	SolutionCode     *string
	TimeSpentMinutes *int
	IsBookmarked     *bool
	DifficultyRating *int

	// LastAttemptedAt is written unconditionally on every upsert.
	LastAttemptedAt time.Time
	// AttemptIncrement is added to the stored attempts counter (0 or 1),
	// keeping the counter monotonic under concurrent updates.
	AttemptIncrement int
}

// DifficultyCount pairs a difficulty grade with a completion count.
type DifficultyCount struct {
	Difficulty Difficulty
	Count      int
}
