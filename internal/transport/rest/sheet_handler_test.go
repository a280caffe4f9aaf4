package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/internal/service/sheet"
)

type sheetServiceMock struct {
	BuildSheetFunc func(ctx context.Context) ([]sheet.ChapterView, error)
}

func (m *sheetServiceMock) BuildSheet(ctx context.Context) ([]sheet.ChapterView, error) {
	return m.BuildSheetFunc(ctx)
}

func TestGetSheet_NestedRollup(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	problemID := uuid.New()
	topicID := uuid.New()
	chapterID := uuid.New()

	svc := &sheetServiceMock{
		BuildSheetFunc: func(ctx context.Context) ([]sheet.ChapterView, error) {
			return []sheet.ChapterView{{
				Chapter: domain.Chapter{ID: chapterID, Name: "Arrays", IsActive: true},
				Topics: []sheet.TopicView{{
					Topic: domain.Topic{ID: topicID, ChapterID: chapterID, Name: "Two Pointers"},
					Problems: []sheet.ProblemView{{
						Problem:  domain.Problem{ID: problemID, TopicID: topicID, Title: "Two Sum", Difficulty: domain.DifficultyEasy},
						Progress: domain.DefaultProgress(userID, problemID),
					}},
					TotalProblems:        1,
					CompletedProblems:    0,
					CompletionPercentage: 0,
				}},
				TotalProblems:        1,
				CompletedProblems:    0,
				CompletionPercentage: 0,
			}}, nil
		},
	}
	h := NewSheetHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/dsa/sheet", nil)
	rec := httptest.NewRecorder()

	h.GetSheet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp []sheetChapterResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].Name != "Arrays" {
		t.Fatalf("chapters: got %+v", resp)
	}
	topic := resp[0].Topics[0]
	if topic.Name != "Two Pointers" || topic.TotalProblems != 1 {
		t.Errorf("topic: got %+v", topic)
	}
	problem := topic.Problems[0]
	if problem.Title != "Two Sum" || problem.Progress.Status != "not-started" {
		t.Errorf("problem: got %+v", problem)
	}
}

func TestGetSheet_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := &sheetServiceMock{
		BuildSheetFunc: func(ctx context.Context) ([]sheet.ChapterView, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewSheetHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/dsa/sheet", nil)
	rec := httptest.NewRecorder()

	h.GetSheet(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
