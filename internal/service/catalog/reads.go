package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// GetChapter returns one chapter by ID, active or not.
func (s *Service) GetChapter(ctx context.Context, id uuid.UUID) (*domain.Chapter, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("chapter_id", "required")
	}
	return s.catalog.GetChapter(ctx, id)
}

// ListChapters returns the active chapters in catalog order.
func (s *Service) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	chapters, err := s.catalog.ListChapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return chapters, nil
}

// GetTopic returns one topic by ID, active or not.
func (s *Service) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}
	return s.catalog.GetTopic(ctx, id)
}

// ListTopicsByChapter returns the active topics of a chapter in catalog
// order. The chapter must resolve.
func (s *Service) ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error) {
	if chapterID == uuid.Nil {
		return nil, domain.NewValidationError("chapter_id", "required")
	}

	if _, err := s.catalog.GetChapter(ctx, chapterID); err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}

	topics, err := s.catalog.ListTopicsByChapter(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetProblem returns one problem by ID, active or not.
func (s *Service) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("problem_id", "required")
	}
	return s.catalog.GetProblem(ctx, id)
}

// ListProblemsByTopic returns the active problems of a topic in catalog
// order. The topic must resolve.
func (s *Service) ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	if _, err := s.catalog.GetTopic(ctx, topicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	problems, err := s.catalog.ListProblemsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}
