package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/config"
	"github.com/algotrack/algotrack-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Progress *ProgressHandler
	Sheet    *SheetHandler
	Stats    *StatsHandler
}

// NewRouter builds the HTTP routing table and wraps it with the common
// middleware chain. The auth middleware resolves bearer tokens for every
// route; handlers that need an identity fail with 401 when it is absent.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
	authRateLimit int,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	// Credential endpoints get a tighter per-IP budget than the rest
	// of the API.
	limit := limiter.Limit(authRateLimit)
	mux.Handle("POST /auth/register", limit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", limit(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /dsa/chapters", h.Catalog.ListChapters)
	mux.HandleFunc("POST /dsa/chapters", h.Catalog.CreateChapter)
	mux.HandleFunc("GET /dsa/chapters/{chapterId}", h.Catalog.GetChapter)
	mux.HandleFunc("GET /dsa/chapters/{chapterId}/topics", h.Catalog.ListTopics)
	mux.HandleFunc("POST /dsa/topics", h.Catalog.CreateTopic)
	mux.HandleFunc("GET /dsa/topics/{topicId}", h.Catalog.GetTopic)
	mux.HandleFunc("GET /dsa/topics/{topicId}/problems", h.Catalog.ListProblems)
	mux.HandleFunc("POST /dsa/problems", h.Catalog.CreateProblem)
	mux.HandleFunc("GET /dsa/problems/search", h.Catalog.SearchProblems)
	mux.HandleFunc("GET /dsa/problems/{problemId}", h.Catalog.GetProblem)

	mux.HandleFunc("PATCH /dsa/progress/{problemId}", h.Progress.UpdateProgress)
	mux.HandleFunc("POST /dsa/progress/bulk", h.Progress.BulkUpdateProgress)
	mux.HandleFunc("GET /dsa/progress", h.Progress.GetUserProgress)
	mux.HandleFunc("GET /dsa/progress/topic/{topicId}", h.Progress.GetTopicProgress)
	mux.HandleFunc("GET /dsa/progress/bookmarked", h.Progress.GetBookmarked)

	mux.HandleFunc("GET /dsa/sheet", h.Sheet.GetSheet)
	mux.HandleFunc("GET /dsa/stats", h.Stats.GetStats)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
		middleware.Auth(validator),
	)

	return chain(mux)
}
