package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	"github.com/algotrack/algotrack-backend/internal/domain"
)

const problemColumns = `id, topic_id, title, description, difficulty,
	youtube_link, leetcode_link, codeforces_link, article_link,
	geeksforgeeks_link, interviewbit_link,
	tags, time_complexity, space_complexity,
	sort_order, is_active, is_premium, created_at, updated_at`

const getProblemSQL = `
SELECT ` + problemColumns + `
FROM problems
WHERE id = $1`

const listProblemsByTopicSQL = `
SELECT ` + problemColumns + `
FROM problems
WHERE topic_id = $1 AND is_active
ORDER BY sort_order, title`

const countActiveProblemsSQL = `
SELECT count(*) FROM problems WHERE is_active`

const insertProblemSQL = `
INSERT INTO problems (
	id, topic_id, title, description, difficulty,
	youtube_link, leetcode_link, codeforces_link, article_link,
	geeksforgeeks_link, interviewbit_link,
	tags, time_complexity, space_complexity,
	sort_order, is_active, is_premium, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
RETURNING ` + problemColumns

// GetProblem returns a problem by ID, active or not.
// Returns domain.ErrNotFound if the ID does not resolve.
func (r *Repo) GetProblem(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getProblemSQL, id)
	p, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", id)
	}

	return p, nil
}

// ListProblemsByTopic returns the topic's active problems ordered by sort_order.
func (r *Repo) ListProblemsByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listProblemsByTopicSQL, topicID)
	if err != nil {
		return nil, fmt.Errorf("list problems by topic: %w", err)
	}
	defer rows.Close()

	return collectProblems(rows)
}

// CountActiveProblems returns the number of active problems in the catalog.
func (r *Repo) CountActiveProblems(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countActiveProblemsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active problems: %w", err)
	}

	return count, nil
}

// CreateProblem inserts a new problem and returns the persisted row.
// A dangling topic reference surfaces as domain.ErrNotFound via the FK.
func (r *Repo) CreateProblem(ctx context.Context, problem *domain.Problem) (*domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	tags := problem.Tags
	if tags == nil {
		tags = []string{}
	}

	row := querier.QueryRow(ctx, insertProblemSQL,
		id, problem.TopicID, problem.Title, problem.Description, string(problem.Difficulty),
		problem.Links.YouTube, problem.Links.LeetCode, problem.Links.Codeforces,
		problem.Links.Article, problem.Links.GeeksForGeeks, problem.Links.InterviewBit,
		tags, problem.TimeComplexity, problem.SpaceComplexity,
		problem.Order, problem.IsActive, problem.IsPremium, now,
	)
	p, err := scanProblem(row)
	if err != nil {
		return nil, postgres.MapError(err, "problem", id)
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

// Search returns active problems matching the filter, ordered by sort_order.
// All filters are conjunctive; the query term matches title, description and
// tags case-insensitively as a substring.
func (r *Repo) Search(ctx context.Context, filter domain.ProblemFilter) ([]domain.Problem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(problemColumns).
		From("problems").
		Where(squirrel.Expr("is_active")).
		OrderBy("sort_order", "title")

	if filter.Query != nil {
		pattern := "%" + *filter.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)", pattern),
		})
	}
	if filter.Difficulty != nil {
		builder = builder.Where(squirrel.Eq{"difficulty": string(*filter.Difficulty)})
	}
	if len(filter.Tags) > 0 {
		builder = builder.Where(squirrel.Expr("tags && ?::text[]", filter.Tags))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search problems: %w", err)
	}
	defer rows.Close()

	return collectProblems(rows)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanProblem(row rowScanner) (*domain.Problem, error) {
	var (
		p          domain.Problem
		difficulty string
	)
	if err := row.Scan(
		&p.ID, &p.TopicID, &p.Title, &p.Description, &difficulty,
		&p.Links.YouTube, &p.Links.LeetCode, &p.Links.Codeforces,
		&p.Links.Article, &p.Links.GeeksForGeeks, &p.Links.InterviewBit,
		&p.Tags, &p.TimeComplexity, &p.SpaceComplexity,
		&p.Order, &p.IsActive, &p.IsPremium, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Difficulty = domain.Difficulty(difficulty)
	return &p, nil
}

func collectProblems(rows pgx.Rows) ([]domain.Problem, error) {
	problems := []domain.Problem{}
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		problems = append(problems, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}

	return problems, nil
}
