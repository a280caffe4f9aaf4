package sheet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/pkg/ctxutil"
)

// BuildSheet returns the active catalog tree with the calling user's
// progress merged in. Every active problem appears exactly once; pairs
// without a stored record get the default progress state. The reads are
// sequential, a concurrent progress update may or may not be visible in
// the same sheet.
func (s *Service) BuildSheet(ctx context.Context) ([]ChapterView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	chapters, err := s.catalog.ListChapters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}

	records, err := s.progress.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find progress: %w", err)
	}

	progressByProblem := make(map[uuid.UUID]domain.ProgressRecord, len(records))
	for _, rec := range records {
		progressByProblem[rec.ProblemID] = rec
	}

	sheet := make([]ChapterView, 0, len(chapters))
	for _, chapter := range chapters {
		topics, err := s.catalog.ListTopicsByChapter(ctx, chapter.ID)
		if err != nil {
			return nil, fmt.Errorf("list topics for chapter %s: %w", chapter.ID, err)
		}

		chapterView := ChapterView{
			Chapter: chapter,
			Topics:  make([]TopicView, 0, len(topics)),
		}

		for _, topic := range topics {
			topicView, err := s.buildTopicView(ctx, userID, topic, progressByProblem)
			if err != nil {
				return nil, err
			}

			chapterView.TotalProblems += topicView.TotalProblems
			chapterView.CompletedProblems += topicView.CompletedProblems
			chapterView.Topics = append(chapterView.Topics, topicView)
		}

		chapterView.CompletionPercentage = completionPercent(
			chapterView.CompletedProblems, chapterView.TotalProblems)
		sheet = append(sheet, chapterView)
	}

	return sheet, nil
}

func (s *Service) buildTopicView(
	ctx context.Context,
	userID uuid.UUID,
	topic domain.Topic,
	progressByProblem map[uuid.UUID]domain.ProgressRecord,
) (TopicView, error) {
	problems, err := s.catalog.ListProblemsByTopic(ctx, topic.ID)
	if err != nil {
		return TopicView{}, fmt.Errorf("list problems for topic %s: %w", topic.ID, err)
	}

	view := TopicView{
		Topic:         topic,
		Problems:      make([]ProblemView, 0, len(problems)),
		TotalProblems: len(problems),
	}

	for _, problem := range problems {
		rec, found := progressByProblem[problem.ID]
		if !found {
			rec = domain.DefaultProgress(userID, problem.ID)
		}
		if rec.IsCompleted {
			view.CompletedProblems++
		}
		view.Problems = append(view.Problems, ProblemView{Problem: problem, Progress: rec})
	}

	view.CompletionPercentage = completionPercent(view.CompletedProblems, view.TotalProblems)
	return view, nil
}
