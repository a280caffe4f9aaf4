package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
	"github.com/algotrack/algotrack-backend/internal/service/catalog"
	"github.com/algotrack/algotrack-backend/internal/transport/middleware"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListChapters(ctx context.Context) ([]domain.Chapter, error)
	GetChapter(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
	ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error)
	GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error)
	SearchProblems(ctx context.Context, input catalog.SearchProblemsInput) ([]domain.Problem, error)
	CreateChapter(ctx context.Context, input catalog.CreateChapterInput) (*domain.Chapter, error)
	CreateTopic(ctx context.Context, input catalog.CreateTopicInput) (*domain.Topic, error)
	CreateProblem(ctx context.Context, input catalog.CreateProblemInput) (*domain.Problem, error)
}

// CatalogHandler serves the problem catalog REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type chapterResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        *string `json:"icon,omitempty"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"isActive"`
}

type topicResponse struct {
	ID          string `json:"id"`
	ChapterID   string `json:"chapterId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

type problemLinksResponse struct {
	YouTube       *string `json:"youtube,omitempty"`
	LeetCode      *string `json:"leetcode,omitempty"`
	Codeforces    *string `json:"codeforces,omitempty"`
	Article       *string `json:"article,omitempty"`
	GeeksForGeeks *string `json:"geeksforgeeks,omitempty"`
	InterviewBit  *string `json:"interviewbit,omitempty"`
}

type problemResponse struct {
	ID              string               `json:"id"`
	TopicID         string               `json:"topicId"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Difficulty      string               `json:"difficulty"`
	Links           problemLinksResponse `json:"links"`
	Tags            []string             `json:"tags"`
	TimeComplexity  *string              `json:"timeComplexity,omitempty"`
	SpaceComplexity *string              `json:"spaceComplexity,omitempty"`
	Order           int                  `json:"order"`
	IsPremium       bool                 `json:"isPremium"`
}

// ListChapters handles GET /dsa/chapters.
func (h *CatalogHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.svc.ListChapters(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]chapterResponse, 0, len(chapters))
	for _, c := range chapters {
		out = append(out, toChapterResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetChapter handles GET /dsa/chapters/{chapterId}. Inactive chapters
// still resolve by id.
func (h *CatalogHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathUUID(w, r, "chapterId")
	if !ok {
		return
	}

	chapter, err := h.svc.GetChapter(r.Context(), chapterID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChapterResponse(*chapter))
}

// ListTopics handles GET /dsa/chapters/{chapterId}/topics.
func (h *CatalogHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	chapterID, ok := pathUUID(w, r, "chapterId")
	if !ok {
		return
	}

	topics, err := h.svc.ListTopicsByChapter(r.Context(), chapterID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTopic handles GET /dsa/topics/{topicId}.
func (h *CatalogHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathUUID(w, r, "topicId")
	if !ok {
		return
	}

	topic, err := h.svc.GetTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(*topic))
}

// ListProblems handles GET /dsa/topics/{topicId}/problems.
func (h *CatalogHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathUUID(w, r, "topicId")
	if !ok {
		return
	}

	problems, err := h.svc.ListProblemsByTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]problemResponse, 0, len(problems))
	for _, p := range problems {
		out = append(out, toProblemResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetProblem handles GET /dsa/problems/{problemId}.
func (h *CatalogHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	problemID, ok := pathUUID(w, r, "problemId")
	if !ok {
		return
	}

	problem, err := h.svc.GetProblem(r.Context(), problemID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProblemResponse(*problem))
}

// SearchProblems handles GET /dsa/problems/search?q=&difficulty=&tags=a,b.
func (h *CatalogHandler) SearchProblems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var input catalog.SearchProblemsInput
	if v := q.Get("q"); v != "" {
		input.Query = &v
	}
	if v := q.Get("difficulty"); v != "" {
		d := domain.Difficulty(v)
		input.Difficulty = &d
	}
	if v := q.Get("tags"); v != "" {
		input.Tags = strings.Split(v, ",")
	}

	problems, err := h.svc.SearchProblems(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]problemResponse, 0, len(problems))
	for _, p := range problems {
		out = append(out, toProblemResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type createChapterRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Order       int     `json:"order"`
}

// CreateChapter handles POST /dsa/chapters. Admin only.
func (h *CatalogHandler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chapter, err := h.svc.CreateChapter(r.Context(), catalog.CreateChapterInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChapterResponse(*chapter))
}

type createTopicRequest struct {
	ChapterID   string `json:"chapterId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// CreateTopic handles POST /dsa/topics. Admin only.
func (h *CatalogHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chapterID, err := uuid.Parse(req.ChapterID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chapterId")
		return
	}

	topic, err := h.svc.CreateTopic(r.Context(), catalog.CreateTopicInput{
		ChapterID:   chapterID,
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(*topic))
}

type createProblemRequest struct {
	TopicID         string               `json:"topicId"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Difficulty      string               `json:"difficulty"`
	Links           problemLinksResponse `json:"links"`
	Tags            []string             `json:"tags"`
	TimeComplexity  *string              `json:"timeComplexity"`
	SpaceComplexity *string              `json:"spaceComplexity"`
	Order           int                  `json:"order"`
	IsPremium       bool                 `json:"isPremium"`
}

// CreateProblem handles POST /dsa/problems. Admin only.
func (h *CatalogHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topicID, err := uuid.Parse(req.TopicID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topicId")
		return
	}

	problem, err := h.svc.CreateProblem(r.Context(), catalog.CreateProblemInput{
		TopicID:     topicID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  domain.Difficulty(req.Difficulty),
		Links: domain.ProblemLinks{
			YouTube:       req.Links.YouTube,
			LeetCode:      req.Links.LeetCode,
			Codeforces:    req.Links.Codeforces,
			Article:       req.Links.Article,
			GeeksForGeeks: req.Links.GeeksForGeeks,
			InterviewBit:  req.Links.InterviewBit,
		},
		Tags:            req.Tags,
		TimeComplexity:  req.TimeComplexity,
		SpaceComplexity: req.SpaceComplexity,
		Order:           req.Order,
		IsPremium:       req.IsPremium,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProblemResponse(*problem))
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toChapterResponse(c domain.Chapter) chapterResponse {
	return chapterResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Order:       c.Order,
		IsActive:    c.IsActive,
	}
}

func toTopicResponse(t domain.Topic) topicResponse {
	return topicResponse{
		ID:          t.ID.String(),
		ChapterID:   t.ChapterID.String(),
		Name:        t.Name,
		Description: t.Description,
		Order:       t.Order,
		IsActive:    t.IsActive,
	}
}

func toProblemResponse(p domain.Problem) problemResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return problemResponse{
		ID:          p.ID.String(),
		TopicID:     p.TopicID.String(),
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  p.Difficulty.String(),
		Links: problemLinksResponse{
			YouTube:       p.Links.YouTube,
			LeetCode:      p.Links.LeetCode,
			Codeforces:    p.Links.Codeforces,
			Article:       p.Links.Article,
			GeeksForGeeks: p.Links.GeeksForGeeks,
			InterviewBit:  p.Links.InterviewBit,
		},
		Tags:            tags,
		TimeComplexity:  p.TimeComplexity,
		SpaceComplexity: p.SpaceComplexity,
		Order:           p.Order,
		IsPremium:       p.IsPremium,
	}
}
