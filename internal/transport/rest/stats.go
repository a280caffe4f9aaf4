package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/algotrack/algotrack-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	BuildStats(ctx context.Context) (*stats.Stats, error)
}

// StatsHandler serves the per-user statistics endpoint.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type statsResponse struct {
	TotalProblems        int            `json:"totalProblems"`
	CompletedProblems    int            `json:"completedProblems"`
	RemainingProblems    int            `json:"remainingProblems"`
	CompletionPercentage int            `json:"completionPercentage"`
	DifficultyStats      map[string]int `json:"difficultyStats"`
}

// GetStats handles GET /dsa/stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.BuildStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	difficulty := make(map[string]int, len(result.DifficultyStats))
	for d, n := range result.DifficultyStats {
		difficulty[d.String()] = n
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalProblems:        result.TotalProblems,
		CompletedProblems:    result.CompletedProblems,
		RemainingProblems:    result.RemainingProblems,
		CompletionPercentage: result.CompletionPercentage,
		DifficultyStats:      difficulty,
	})
}
