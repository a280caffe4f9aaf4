// Package sheet builds the fully merged sheet view: the active catalog
// tree with the calling user's progress overlaid and per-topic/per-chapter
// completion rollups. The view is recomputed on every call.
package sheet

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

type catalogRepo interface {
	ListChapters(ctx context.Context) ([]domain.Chapter, error)
	ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error)
	ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)
}

type progressRepo interface {
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
}

// Service implements the sheet aggregation.
type Service struct {
	catalog  catalogRepo
	progress progressRepo
	log      *slog.Logger
}

// NewService creates a new Sheet service.
func NewService(log *slog.Logger, catalog catalogRepo, progress progressRepo) *Service {
	return &Service{
		catalog:  catalog,
		progress: progress,
		log:      log.With("service", "sheet"),
	}
}
