// Package catalog implements the catalog read contract plus the authoring
// operations used by admins and the seeder.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

type catalogRepo interface {
	GetChapter(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
	ListChapters(ctx context.Context) ([]domain.Chapter, error)
	CreateChapter(ctx context.Context, chapter *domain.Chapter) (*domain.Chapter, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)
	CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error)
	Search(ctx context.Context, filter domain.ProblemFilter) ([]domain.Problem, error)
}

// Service implements the catalog business logic.
type Service struct {
	catalog catalogRepo
	log     *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(log *slog.Logger, catalog catalogRepo) *Service {
	return &Service{
		catalog: catalog,
		log:     log.With("service", "catalog"),
	}
}
