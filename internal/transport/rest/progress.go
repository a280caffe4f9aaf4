package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/internal/service/progress"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	UpdateProgress(ctx context.Context, input progress.UpdateProgressInput) (*domain.ProgressRecord, error)
	BulkUpdateProgress(ctx context.Context, input progress.BulkUpdateInput) ([]progress.BulkItemResult, error)
	GetUserProgress(ctx context.Context) ([]domain.ProgressRecord, error)
	GetProgressForTopic(ctx context.Context, topicID uuid.UUID) ([]domain.ProgressRecord, error)
	GetBookmarked(ctx context.Context) ([]domain.ProgressRecord, error)
}

// ProgressHandler serves per-user progress REST endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type updateProgressRequest struct {
	Status           *string `json:"status"`
	IsCompleted      *bool   `json:"isCompleted"`
	Notes            *string `json:"notes"`
	SolutionCode     *string `json:"solutionCode"`
	TimeSpentMinutes *int    `json:"timeSpentMinutes"`
	IsBookmarked     *bool   `json:"isBookmarked"`
	DifficultyRating *int    `json:"difficultyRating"`
}

type progressResponse struct {
	ProblemID        string     `json:"problemId"`
	Status           string     `json:"status"`
	IsCompleted      bool       `json:"isCompleted"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	SolutionCode     *string    `json:"solutionCode,omitempty"`
	TimeSpentMinutes *int       `json:"timeSpentMinutes,omitempty"`
	Attempts         int        `json:"attempts"`
	LastAttemptedAt  *time.Time `json:"lastAttemptedAt,omitempty"`
	IsBookmarked     bool       `json:"isBookmarked"`
	DifficultyRating *int       `json:"difficultyRating,omitempty"`
}

// UpdateProgress handles PATCH /dsa/progress/{problemId}.
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	problemID, ok := pathUUID(w, r, "problemId")
	if !ok {
		return
	}

	var req updateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.UpdateProgress(r.Context(), toUpdateInput(problemID, req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*rec))
}

type bulkUpdateRequest struct {
	Items []bulkUpdateItem `json:"items"`
}

type bulkUpdateItem struct {
	ProblemID string `json:"problemId"`
	updateProgressRequest
}

type bulkItemResponse struct {
	ProblemID string            `json:"problemId"`
	Progress  *progressResponse `json:"progress,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// BulkUpdateProgress handles POST /dsa/progress/bulk. Items succeed or
// fail independently; the response carries one outcome per item.
func (h *ProgressHandler) BulkUpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]progress.UpdateProgressInput, 0, len(req.Items))
	for _, item := range req.Items {
		problemID, err := uuid.Parse(item.ProblemID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid problemId: "+item.ProblemID)
			return
		}
		items = append(items, toUpdateInput(problemID, item.updateProgressRequest))
	}

	results, err := h.svc.BulkUpdateProgress(r.Context(), progress.BulkUpdateInput{Items: items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]bulkItemResponse, 0, len(results))
	for _, res := range results {
		item := bulkItemResponse{ProblemID: res.ProblemID.String()}
		switch {
		case res.Err != nil:
			item.Error = itemErrorMessage(res.Err)
		case res.Progress != nil:
			resp := toProgressResponse(*res.Progress)
			item.Progress = &resp
		}
		out = append(out, item)
	}

	writeJSON(w, http.StatusOK, map[string][]bulkItemResponse{"results": out})
}

// GetUserProgress handles GET /dsa/progress.
func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetUserProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponses(records))
}

// GetTopicProgress handles GET /dsa/progress/topic/{topicId}.
func (h *ProgressHandler) GetTopicProgress(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathUUID(w, r, "topicId")
	if !ok {
		return
	}

	records, err := h.svc.GetProgressForTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponses(records))
}

// GetBookmarked handles GET /dsa/progress/bookmarked.
func (h *ProgressHandler) GetBookmarked(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetBookmarked(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponses(records))
}

// itemErrorMessage keeps internal error details out of bulk responses.
func itemErrorMessage(err error) string {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "problem not found"
	default:
		return "internal error"
	}
}

func toUpdateInput(problemID uuid.UUID, req updateProgressRequest) progress.UpdateProgressInput {
	input := progress.UpdateProgressInput{
		ProblemID:        problemID,
		IsCompleted:      req.IsCompleted,
		Notes:            req.Notes,
		SolutionCode:     req.SolutionCode,
		TimeSpentMinutes: req.TimeSpentMinutes,
		IsBookmarked:     req.IsBookmarked,
		DifficultyRating: req.DifficultyRating,
	}
	if req.Status != nil {
		status := domain.ProgressStatus(*req.Status)
		input.Status = &status
	}
	return input
}

func toProgressResponse(rec domain.ProgressRecord) progressResponse {
	return progressResponse{
		ProblemID:        rec.ProblemID.String(),
		Status:           rec.Status.String(),
		IsCompleted:      rec.IsCompleted,
		CompletedAt:      rec.CompletedAt,
		Notes:            rec.Notes,
		SolutionCode:     rec.SolutionCode,
		TimeSpentMinutes: rec.TimeSpentMinutes,
		Attempts:         rec.Attempts,
		LastAttemptedAt:  rec.LastAttemptedAt,
		IsBookmarked:     rec.IsBookmarked,
		DifficultyRating: rec.DifficultyRating,
	}
}

func toProgressResponses(records []domain.ProgressRecord) []progressResponse {
	out := make([]progressResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toProgressResponse(rec))
	}
	return out
}
