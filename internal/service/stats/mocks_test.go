package stats

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	CountActiveProblemsFunc func(ctx context.Context) (int, error)

	calls struct {
		CountActiveProblems []struct{}
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) CountActiveProblems(ctx context.Context) (int, error) {
	if mock.CountActiveProblemsFunc == nil {
		panic("catalogRepoMock.CountActiveProblemsFunc: method is nil but catalogRepo.CountActiveProblems was just called")
	}
	mock.lock.Lock()
	mock.calls.CountActiveProblems = append(mock.calls.CountActiveProblems, struct{}{})
	mock.lock.Unlock()
	return mock.CountActiveProblemsFunc(ctx)
}

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	CountCompletedFunc             func(ctx context.Context, userID uuid.UUID) (int, error)
	CountCompletedByDifficultyFunc func(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyCount, error)

	calls struct {
		CountCompleted []struct {
			UserID uuid.UUID
		}
		CountCompletedByDifficulty []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *progressRepoMock) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountCompletedFunc == nil {
		panic("progressRepoMock.CountCompletedFunc: method is nil but progressRepo.CountCompleted was just called")
	}
	mock.lock.Lock()
	mock.calls.CountCompleted = append(mock.calls.CountCompleted, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.CountCompletedFunc(ctx, userID)
}

func (mock *progressRepoMock) CountCompletedByDifficulty(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyCount, error) {
	if mock.CountCompletedByDifficultyFunc == nil {
		panic("progressRepoMock.CountCompletedByDifficultyFunc: method is nil but progressRepo.CountCompletedByDifficulty was just called")
	}
	mock.lock.Lock()
	mock.calls.CountCompletedByDifficulty = append(mock.calls.CountCompletedByDifficulty, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.CountCompletedByDifficultyFunc(ctx, userID)
}
