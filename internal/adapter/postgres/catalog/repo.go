// Package catalog implements the problem-catalog store (chapters, topics,
// problems) using PostgreSQL. Listings return only active rows ordered by
// sort_order; point lookups resolve inactive rows too, so writers can
// validate references against the full catalog.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	"github.com/algotrack/algotrack-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Chapters
// ---------------------------------------------------------------------------

const chapterColumns = `id, name, description, icon, sort_order, is_active, created_at, updated_at`

const getChapterSQL = `
SELECT ` + chapterColumns + `
FROM chapters
WHERE id = $1`

const listChaptersSQL = `
SELECT ` + chapterColumns + `
FROM chapters
WHERE is_active
ORDER BY sort_order, name`

const insertChapterSQL = `
INSERT INTO chapters (id, name, description, icon, sort_order, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + chapterColumns

// GetChapter returns a chapter by ID, active or not.
// Returns domain.ErrNotFound if the ID does not resolve.
func (r *Repo) GetChapter(ctx context.Context, id uuid.UUID) (*domain.Chapter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getChapterSQL, id)
	c, err := scanChapter(row)
	if err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}

	return c, nil
}

// ListChapters returns all active chapters ordered by sort_order.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) ListChapters(ctx context.Context) ([]domain.Chapter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listChaptersSQL)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer rows.Close()

	chapters := []domain.Chapter{}
	for rows.Next() {
		c, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chapter: %w", err)
		}
		chapters = append(chapters, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chapters: %w", err)
	}

	return chapters, nil
}

// CreateChapter inserts a new chapter and returns the persisted row.
func (r *Repo) CreateChapter(ctx context.Context, chapter *domain.Chapter) (*domain.Chapter, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, insertChapterSQL,
		id, chapter.Name, chapter.Description, chapter.Icon,
		chapter.Order, chapter.IsActive, now,
	)
	c, err := scanChapter(row)
	if err != nil {
		return nil, postgres.MapError(err, "chapter", id)
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Topics
// ---------------------------------------------------------------------------

const topicColumns = `id, chapter_id, name, description, sort_order, is_active, created_at, updated_at`

const getTopicSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE id = $1`

const listTopicsByChapterSQL = `
SELECT ` + topicColumns + `
FROM topics
WHERE chapter_id = $1 AND is_active
ORDER BY sort_order, name`

const insertTopicSQL = `
INSERT INTO topics (id, chapter_id, name, description, sort_order, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + topicColumns

// GetTopic returns a topic by ID, active or not.
// Returns domain.ErrNotFound if the ID does not resolve.
func (r *Repo) GetTopic(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getTopicSQL, id)
	t, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return t, nil
}

// ListTopicsByChapter returns the chapter's active topics ordered by sort_order.
func (r *Repo) ListTopicsByChapter(ctx context.Context, chapterID uuid.UUID) ([]domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTopicsByChapterSQL, chapterID)
	if err != nil {
		return nil, fmt.Errorf("list topics by chapter: %w", err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}

	return topics, nil
}

// CreateTopic inserts a new topic and returns the persisted row.
// A dangling chapter reference surfaces as domain.ErrNotFound via the FK.
func (r *Repo) CreateTopic(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, insertTopicSQL,
		id, topic.ChapterID, topic.Name, topic.Description,
		topic.Order, topic.IsActive, now,
	)
	t, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return t, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChapter(row rowScanner) (*domain.Chapter, error) {
	var c domain.Chapter
	if err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Icon,
		&c.Order, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanTopic(row rowScanner) (*domain.Topic, error) {
	var t domain.Topic
	if err := row.Scan(
		&t.ID, &t.ChapterID, &t.Name, &t.Description,
		&t.Order, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
