package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// Stats is the per-user completion rollup.
// DifficultyStats always carries all three difficulty keys, zero-valued
// buckets included.
type Stats struct {
	TotalProblems        int
	CompletedProblems    int
	RemainingProblems    int
	CompletionPercentage int
	DifficultyStats      map[domain.Difficulty]int
}

// BuildStats returns the calling user's completion statistics over the
// active catalog.
func (s *Service) BuildStats(ctx context.Context) (*Stats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.catalog.CountActiveProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active problems: %w", err)
	}

	completed, err := s.progress.CountCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}

	byDifficulty, err := s.progress.CountCompletedByDifficulty(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count completed by difficulty: %w", err)
	}

	// Pre-initialize every bucket so zero counts are present in the result.
	difficultyStats := make(map[domain.Difficulty]int, 3)
	for _, d := range domain.Difficulties() {
		difficultyStats[d] = 0
	}
	for _, dc := range byDifficulty {
		difficultyStats[dc.Difficulty] = dc.Count
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return &Stats{
		TotalProblems:        total,
		CompletedProblems:    completed,
		RemainingProblems:    total - completed,
		CompletionPercentage: percentage,
		DifficultyStats:      difficultyStats,
	}, nil
}
