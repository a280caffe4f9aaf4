package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// UpdateProgress applies a partial progress update for the calling user.
// The record is created lazily on first update; derived completion fields
// are computed here, never taken verbatim from the caller.
func (s *Service) UpdateProgress(ctx context.Context, input UpdateProgressInput) (*domain.ProgressRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The problem must exist before any record is created for it.
	if _, err := s.problems.GetProblem(ctx, input.ProblemID); err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}

	now := time.Now().UTC()

	// The attempt counter depends on the stored status, so read the
	// existing record when the incoming status could start an attempt.
	// The read and the upsert are not atomic; the original behavior is
	// kept, the counter may miss an increment under a concurrent first
	// update for the same pair.
	var existing *domain.ProgressRecord
	if input.Status != nil && *input.Status != domain.StatusNotStarted {
		rec, err := s.progress.Find(ctx, userID, input.ProblemID)
		switch {
		case err == nil:
			existing = rec
		case errors.Is(err, domain.ErrNotFound):
			// first update for this pair
		default:
			return nil, fmt.Errorf("find progress: %w", err)
		}
	}

	params := deriveFields(existing, input, now)

	updated, err := s.progress.Upsert(ctx, userID, input.ProblemID, params)
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	s.log.InfoContext(ctx, "progress updated",
		slog.String("user_id", userID.String()),
		slog.String("problem_id", input.ProblemID.String()),
		slog.String("status", string(updated.Status)),
		slog.Bool("is_completed", updated.IsCompleted),
		slog.Int("attempts", updated.Attempts),
	)

	return updated, nil
}
