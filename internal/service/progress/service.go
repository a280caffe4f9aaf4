// Package progress implements the progress update engine: validated
// partial updates with derived completion fields, applied through an
// atomic store upsert.
package progress

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	Find(ctx context.Context, userID, problemID uuid.UUID) (*domain.ProgressRecord, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	FindByProblemIDs(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) ([]domain.ProgressRecord, error)
	FindBookmarked(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	Upsert(ctx context.Context, userID, problemID uuid.UUID, params domain.ProgressUpsertParams) (*domain.ProgressRecord, error)
}

type problemRepo interface {
	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the progress business logic.
type Service struct {
	progress progressRepo
	problems problemRepo
	log      *slog.Logger
}

// NewService creates a new Progress service.
func NewService(log *slog.Logger, progress progressRepo, problems problemRepo) *Service {
	return &Service{
		progress: progress,
		problems: problems,
		log:      log.With("service", "progress"),
	}
}
