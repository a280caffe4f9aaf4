package progress

import (
	"context"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// BulkItemResult is the outcome of one item of a bulk update.
// Exactly one of Progress and Err is set.
type BulkItemResult struct {
	ProblemID uuid.UUID
	Progress  *domain.ProgressRecord
	Err       error
}

// BulkUpdateProgress applies each item through the same path as
// UpdateProgress, best-effort. A failed item does not roll back or block
// the others; every item gets its own outcome in input order.
func (s *Service) BulkUpdateProgress(ctx context.Context, input BulkUpdateInput) ([]BulkItemResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	results := make([]BulkItemResult, 0, len(input.Items))
	for _, item := range input.Items {
		rec, err := s.UpdateProgress(ctx, item)
		results = append(results, BulkItemResult{
			ProblemID: item.ProblemID,
			Progress:  rec,
			Err:       err,
		})
	}

	return results, nil
}
