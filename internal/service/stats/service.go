// Package stats builds the per-user completion statistics rollup.
package stats

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

type catalogRepo interface {
	CountActiveProblems(ctx context.Context) (int, error)
}

type progressRepo interface {
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	CountCompletedByDifficulty(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyCount, error)
}

// Service implements the statistics aggregation.
type Service struct {
	catalog  catalogRepo
	progress progressRepo
	log      *slog.Logger
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, catalog catalogRepo, progress progressRepo) *Service {
	return &Service{
		catalog:  catalog,
		progress: progress,
		log:      log.With("service", "stats"),
	}
}
