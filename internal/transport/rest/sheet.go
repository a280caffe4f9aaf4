package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/algotrack/algotrack-backend/internal/service/sheet"
)

// sheetService defines the minimal interface needed by SheetHandler.
type sheetService interface {
	BuildSheet(ctx context.Context) ([]sheet.ChapterView, error)
}

// SheetHandler serves the aggregated study sheet endpoint.
type SheetHandler struct {
	svc sheetService
	log *slog.Logger
}

// NewSheetHandler creates a SheetHandler.
func NewSheetHandler(svc sheetService, logger *slog.Logger) *SheetHandler {
	return &SheetHandler{svc: svc, log: logger.With("handler", "sheet")}
}

type sheetProblemResponse struct {
	problemResponse
	Progress progressResponse `json:"progress"`
}

type sheetTopicResponse struct {
	topicResponse
	Problems             []sheetProblemResponse `json:"problems"`
	TotalProblems        int                    `json:"totalProblems"`
	CompletedProblems    int                    `json:"completedProblems"`
	CompletionPercentage int                    `json:"completionPercentage"`
}

type sheetChapterResponse struct {
	chapterResponse
	Topics               []sheetTopicResponse `json:"topics"`
	TotalProblems        int                  `json:"totalProblems"`
	CompletedProblems    int                  `json:"completedProblems"`
	CompletionPercentage int                  `json:"completionPercentage"`
}

// GetSheet handles GET /dsa/sheet.
func (h *SheetHandler) GetSheet(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.svc.BuildSheet(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]sheetChapterResponse, 0, len(chapters))
	for _, cv := range chapters {
		out = append(out, toSheetChapterResponse(cv))
	}
	writeJSON(w, http.StatusOK, out)
}

func toSheetChapterResponse(cv sheet.ChapterView) sheetChapterResponse {
	topics := make([]sheetTopicResponse, 0, len(cv.Topics))
	for _, tv := range cv.Topics {
		topics = append(topics, toSheetTopicResponse(tv))
	}
	return sheetChapterResponse{
		chapterResponse:      toChapterResponse(cv.Chapter),
		Topics:               topics,
		TotalProblems:        cv.TotalProblems,
		CompletedProblems:    cv.CompletedProblems,
		CompletionPercentage: cv.CompletionPercentage,
	}
}

func toSheetTopicResponse(tv sheet.TopicView) sheetTopicResponse {
	problems := make([]sheetProblemResponse, 0, len(tv.Problems))
	for _, pv := range tv.Problems {
		problems = append(problems, sheetProblemResponse{
			problemResponse: toProblemResponse(pv.Problem),
			Progress:        toProgressResponse(pv.Progress),
		})
	}
	return sheetTopicResponse{
		topicResponse:        toTopicResponse(tv.Topic),
		Problems:             problems,
		TotalProblems:        tv.TotalProblems,
		CompletedProblems:    tv.CompletedProblems,
		CompletionPercentage: tv.CompletionPercentage,
	}
}
