package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// GetUserProgress returns every progress record of the calling user.
func (s *Service) GetUserProgress(ctx context.Context) ([]domain.ProgressRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.progress.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find progress: %w", err)
	}

	return records, nil
}

// GetProgressForTopic returns the calling user's progress records for the
// problems of one topic. Problems without a record are simply absent from
// the result; the sheet view is the place that fills in defaults.
func (s *Service) GetProgressForTopic(ctx context.Context, topicID uuid.UUID) ([]domain.ProgressRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	problems, err := s.problems.ListProblemsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}

	problemIDs := make([]uuid.UUID, 0, len(problems))
	for _, p := range problems {
		problemIDs = append(problemIDs, p.ID)
	}

	records, err := s.progress.FindByProblemIDs(ctx, userID, problemIDs)
	if err != nil {
		return nil, fmt.Errorf("find progress by problem ids: %w", err)
	}

	return records, nil
}

// GetBookmarked returns the calling user's bookmarked progress records.
func (s *Service) GetBookmarked(ctx context.Context) ([]domain.ProgressRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.progress.FindBookmarked(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find bookmarked progress: %w", err)
	}

	return records, nil
}
