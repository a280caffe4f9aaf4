package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	FindFunc             func(ctx context.Context, userID, problemID uuid.UUID) (*domain.ProgressRecord, error)
	FindAllForUserFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	FindByProblemIDsFunc func(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) ([]domain.ProgressRecord, error)
	FindBookmarkedFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	UpsertFunc           func(ctx context.Context, userID, problemID uuid.UUID, params domain.ProgressUpsertParams) (*domain.ProgressRecord, error)

	calls struct {
		Find []struct {
			UserID    uuid.UUID
			ProblemID uuid.UUID
		}
		FindAllForUser []struct {
			UserID uuid.UUID
		}
		FindByProblemIDs []struct {
			UserID     uuid.UUID
			ProblemIDs []uuid.UUID
		}
		FindBookmarked []struct {
			UserID uuid.UUID
		}
		Upsert []struct {
			UserID    uuid.UUID
			ProblemID uuid.UUID
			Params    domain.ProgressUpsertParams
		}
	}
	lock sync.RWMutex
}

func (mock *progressRepoMock) Find(ctx context.Context, userID, problemID uuid.UUID) (*domain.ProgressRecord, error) {
	if mock.FindFunc == nil {
		panic("progressRepoMock.FindFunc: method is nil but progressRepo.Find was just called")
	}
	mock.lock.Lock()
	mock.calls.Find = append(mock.calls.Find, struct {
		UserID    uuid.UUID
		ProblemID uuid.UUID
	}{userID, problemID})
	mock.lock.Unlock()
	return mock.FindFunc(ctx, userID, problemID)
}

func (mock *progressRepoMock) FindCalls() []struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Find
}

func (mock *progressRepoMock) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	if mock.FindAllForUserFunc == nil {
		panic("progressRepoMock.FindAllForUserFunc: method is nil but progressRepo.FindAllForUser was just called")
	}
	mock.lock.Lock()
	mock.calls.FindAllForUser = append(mock.calls.FindAllForUser, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.FindAllForUserFunc(ctx, userID)
}

func (mock *progressRepoMock) FindByProblemIDs(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) ([]domain.ProgressRecord, error) {
	if mock.FindByProblemIDsFunc == nil {
		panic("progressRepoMock.FindByProblemIDsFunc: method is nil but progressRepo.FindByProblemIDs was just called")
	}
	mock.lock.Lock()
	mock.calls.FindByProblemIDs = append(mock.calls.FindByProblemIDs, struct {
		UserID     uuid.UUID
		ProblemIDs []uuid.UUID
	}{userID, problemIDs})
	mock.lock.Unlock()
	return mock.FindByProblemIDsFunc(ctx, userID, problemIDs)
}

func (mock *progressRepoMock) FindByProblemIDsCalls() []struct {
	UserID     uuid.UUID
	ProblemIDs []uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindByProblemIDs
}

func (mock *progressRepoMock) FindBookmarked(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	if mock.FindBookmarkedFunc == nil {
		panic("progressRepoMock.FindBookmarkedFunc: method is nil but progressRepo.FindBookmarked was just called")
	}
	mock.lock.Lock()
	mock.calls.FindBookmarked = append(mock.calls.FindBookmarked, struct {
		UserID uuid.UUID
	}{userID})
	mock.lock.Unlock()
	return mock.FindBookmarkedFunc(ctx, userID)
}

func (mock *progressRepoMock) Upsert(ctx context.Context, userID, problemID uuid.UUID, params domain.ProgressUpsertParams) (*domain.ProgressRecord, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		UserID    uuid.UUID
		ProblemID uuid.UUID
		Params    domain.ProgressUpsertParams
	}{userID, problemID, params})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, userID, problemID, params)
}

func (mock *progressRepoMock) UpsertCalls() []struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Params    domain.ProgressUpsertParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

var _ problemRepo = &problemRepoMock{}

type problemRepoMock struct {
	GetProblemFunc          func(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	ListProblemsByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)

	calls struct {
		GetProblem []struct {
			ID uuid.UUID
		}
		ListProblemsByTopic []struct {
			TopicID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *problemRepoMock) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	if mock.GetProblemFunc == nil {
		panic("problemRepoMock.GetProblemFunc: method is nil but problemRepo.GetProblem was just called")
	}
	mock.lock.Lock()
	mock.calls.GetProblem = append(mock.calls.GetProblem, struct {
		ID uuid.UUID
	}{id})
	mock.lock.Unlock()
	return mock.GetProblemFunc(ctx, id)
}

func (mock *problemRepoMock) GetProblemCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetProblem
}

func (mock *problemRepoMock) ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error) {
	if mock.ListProblemsByTopicFunc == nil {
		panic("problemRepoMock.ListProblemsByTopicFunc: method is nil but problemRepo.ListProblemsByTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.ListProblemsByTopic = append(mock.calls.ListProblemsByTopic, struct {
		TopicID uuid.UUID
	}{topicID})
	mock.lock.Unlock()
	return mock.ListProblemsByTopicFunc(ctx, topicID)
}
