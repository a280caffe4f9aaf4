package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// CreateChapter inserts a new active chapter.
func (s *Service) CreateChapter(ctx context.Context, input CreateChapterInput) (*domain.Chapter, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	chapter, err := s.catalog.CreateChapter(ctx, &domain.Chapter{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Order:       input.Order,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("create chapter: %w", err)
	}

	s.log.InfoContext(ctx, "chapter created",
		slog.String("chapter_id", chapter.ID.String()),
		slog.String("name", chapter.Name),
	)

	return chapter, nil
}

// CreateTopic inserts a new active topic. The parent chapter must exist.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetChapter(ctx, input.ChapterID); err != nil {
		return nil, fmt.Errorf("get chapter: %w", err)
	}

	topic, err := s.catalog.CreateTopic(ctx, &domain.Topic{
		ChapterID:   input.ChapterID,
		Name:        input.Name,
		Description: input.Description,
		Order:       input.Order,
		IsActive:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("chapter_id", topic.ChapterID.String()),
		slog.String("name", topic.Name),
	)

	return topic, nil
}

// CreateProblem inserts a new active problem. The parent topic must exist.
func (s *Service) CreateProblem(ctx context.Context, input CreateProblemInput) (*domain.Problem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetTopic(ctx, input.TopicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	problem, err := s.catalog.CreateProblem(ctx, &domain.Problem{
		TopicID:         input.TopicID,
		Title:           input.Title,
		Description:     input.Description,
		Difficulty:      input.Difficulty,
		Links:           input.Links,
		Tags:            tags,
		TimeComplexity:  input.TimeComplexity,
		SpaceComplexity: input.SpaceComplexity,
		Order:           input.Order,
		IsActive:        true,
		IsPremium:       input.IsPremium,
	})
	if err != nil {
		return nil, fmt.Errorf("create problem: %w", err)
	}

	s.log.InfoContext(ctx, "problem created",
		slog.String("problem_id", problem.ID.String()),
		slog.String("topic_id", problem.TopicID.String()),
		slog.String("title", problem.Title),
		slog.String("difficulty", string(problem.Difficulty)),
	)

	return problem, nil
}
