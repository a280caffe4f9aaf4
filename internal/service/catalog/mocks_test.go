package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetChapterFunc          func(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
	ListChaptersFunc        func(ctx context.Context) ([]domain.Chapter, error)
	CreateChapterFunc       func(ctx context.Context, chapter *domain.Chapter) (*domain.Chapter, error)
	GetTopicFunc            func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListTopicsByChapterFunc func(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error)
	CreateTopicFunc         func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetProblemFunc          func(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	ListProblemsByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)
	CreateProblemFunc       func(ctx context.Context, problem *domain.Problem) (*domain.Problem, error)
	SearchFunc              func(ctx context.Context, filter domain.ProblemFilter) ([]domain.Problem, error)

	calls struct {
		CreateChapter []struct {
			Chapter *domain.Chapter
		}
		CreateTopic []struct {
			Topic *domain.Topic
		}
		CreateProblem []struct {
			Problem *domain.Problem
		}
		Search []struct {
			Filter domain.ProblemFilter
		}
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) GetChapter(ctx context.Context, id uuid.UUID) (*domain.Chapter, error) {
	if mock.GetChapterFunc == nil {
		panic("catalogRepoMock.GetChapterFunc: method is nil but catalogRepo.GetChapter was just called")
	}
	return mock.GetChapterFunc(ctx, id)
}

func (mock *catalogRepoMock) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	if mock.ListChaptersFunc == nil {
		panic("catalogRepoMock.ListChaptersFunc: method is nil but catalogRepo.ListChapters was just called")
	}
	return mock.ListChaptersFunc(ctx)
}

func (mock *catalogRepoMock) CreateChapter(ctx context.Context, chapter *domain.Chapter) (*domain.Chapter, error) {
	if mock.CreateChapterFunc == nil {
		panic("catalogRepoMock.CreateChapterFunc: method is nil but catalogRepo.CreateChapter was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateChapter = append(mock.calls.CreateChapter, struct {
		Chapter *domain.Chapter
	}{chapter})
	mock.lock.Unlock()
	return mock.CreateChapterFunc(ctx, chapter)
}

func (mock *catalogRepoMock) CreateChapterCalls() []struct {
	Chapter *domain.Chapter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateChapter
}

func (mock *catalogRepoMock) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("catalogRepoMock.GetTopicFunc: method is nil but catalogRepo.GetTopic was just called")
	}
	return mock.GetTopicFunc(ctx, id)
}

func (mock *catalogRepoMock) ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListTopicsByChapterFunc == nil {
		panic("catalogRepoMock.ListTopicsByChapterFunc: method is nil but catalogRepo.ListTopicsByChapter was just called")
	}
	return mock.ListTopicsByChapterFunc(ctx, chapterID)
}

func (mock *catalogRepoMock) CreateTopic(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("catalogRepoMock.CreateTopicFunc: method is nil but catalogRepo.CreateTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, struct {
		Topic *domain.Topic
	}{topic})
	mock.lock.Unlock()
	return mock.CreateTopicFunc(ctx, topic)
}

func (mock *catalogRepoMock) CreateTopicCalls() []struct {
	Topic *domain.Topic
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateTopic
}

func (mock *catalogRepoMock) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	if mock.GetProblemFunc == nil {
		panic("catalogRepoMock.GetProblemFunc: method is nil but catalogRepo.GetProblem was just called")
	}
	return mock.GetProblemFunc(ctx, id)
}

func (mock *catalogRepoMock) ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error) {
	if mock.ListProblemsByTopicFunc == nil {
		panic("catalogRepoMock.ListProblemsByTopicFunc: method is nil but catalogRepo.ListProblemsByTopic was just called")
	}
	return mock.ListProblemsByTopicFunc(ctx, topicID)
}

func (mock *catalogRepoMock) CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error) {
	if mock.CreateProblemFunc == nil {
		panic("catalogRepoMock.CreateProblemFunc: method is nil but catalogRepo.CreateProblem was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateProblem = append(mock.calls.CreateProblem, struct {
		Problem *domain.Problem
	}{problem})
	mock.lock.Unlock()
	return mock.CreateProblemFunc(ctx, problem)
}

func (mock *catalogRepoMock) CreateProblemCalls() []struct {
	Problem *domain.Problem
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateProblem
}

func (mock *catalogRepoMock) Search(ctx context.Context, filter domain.ProblemFilter) ([]domain.Problem, error) {
	if mock.SearchFunc == nil {
		panic("catalogRepoMock.SearchFunc: method is nil but catalogRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Filter domain.ProblemFilter
	}{filter})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, filter)
}

func (mock *catalogRepoMock) SearchCalls() []struct {
	Filter domain.ProblemFilter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}
