package sheet

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	ListChaptersFunc        func(ctx context.Context) ([]domain.Chapter, error)
	ListTopicsByChapterFunc func(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error)
	ListProblemsByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)

	calls struct {
		ListChapters        []struct{}
		ListTopicsByChapter []struct {
			ChapterID uuid.UUID
		}
		ListProblemsByTopic []struct {
			TopicID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	if mock.ListChaptersFunc == nil {
		panic("catalogRepoMock.ListChaptersFunc: method is nil but catalogRepo.ListChapters was just called")
	}
	mock.lock.Lock()
	mock.calls.ListChapters = append(mock.calls.ListChapters, struct{}{})
	mock.lock.Unlock()
	return mock.ListChaptersFunc(ctx)
}

func (mock *catalogRepoMock) ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListTopicsByChapterFunc == nil {
		panic("catalogRepoMock.ListTopicsByChapterFunc: method is nil but catalogRepo.ListTopicsByChapter was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTopicsByChapter = append(mock.calls.ListTopicsByChapter, struct {
		ChapterID uuid.UUID
	}{chapterID})
	mock.lock.Unlock()
	return mock.ListTopicsByChapterFunc(ctx, chapterID)
}

func (mock *catalogRepoMock) ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error) {
	if mock.ListProblemsByTopicFunc == nil {
		panic("catalogRepoMock.ListProblemsByTopicFunc: method is nil but catalogRepo.ListProblemsByTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.ListProblemsByTopic = append(mock.calls.ListProblemsByTopic, struct {
		TopicID uuid.UUID
	}{topicID})
	mock.lock.Unlock()
	return mock.ListProblemsByTopicFunc(ctx, topicID)
}

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	FindAllForUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)

	calls struct {
		FindAllForUser []struct {
			UserID uuid.UUID
		}
	}
	lock sync.RWMutex
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

func (mock *progressRepoMock) FindAllForUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindAllForUser
}
