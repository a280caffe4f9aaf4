package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// SearchProblems returns active problems matching every supplied filter.
// A blank query and empty tag list are treated as absent filters.
func (s *Service) SearchProblems(ctx context.Context, input SearchProblemsInput) ([]domain.Problem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ProblemFilter{
		Difficulty: input.Difficulty,
	}
	if input.Query != nil {
		if q := strings.TrimSpace(*input.Query); q != "" {
			filter.Query = &q
		}
	}
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			filter.Tags = append(filter.Tags, tag)
		}
	}

	problems, err := s.catalog.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search problems: %w", err)
	}

	return problems, nil
}
