package auth

import (
	"context"
	"fmt"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// Me returns the profile of the calling user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return user, nil
}
