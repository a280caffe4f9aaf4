// Package progress implements the per-(user, problem) progress store using
// PostgreSQL. The unique index on (user_id, problem_id) is the concurrency
// backstop: Upsert is a single INSERT .. ON CONFLICT DO UPDATE, so two
// concurrent first-writes for the same pair serialize on the index and both
// callers observe a merged record; a duplicate-key conflict never escapes.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	"github.com/algotrack/algotrack-backend/internal/domain"
)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const progressColumns = `id, user_id, problem_id, is_completed, status, completed_at,
	notes, solution_code, time_spent_minutes, attempts, last_attempted_at,
	is_bookmarked, difficulty_rating, created_at, updated_at`

const findSQL = `
SELECT ` + progressColumns + `
FROM user_progress
WHERE user_id = $1 AND problem_id = $2`

const findAllForUserSQL = `
SELECT ` + progressColumns + `
FROM user_progress
WHERE user_id = $1
ORDER BY updated_at DESC`

const findByProblemIDsSQL = `
SELECT ` + progressColumns + `
FROM user_progress
WHERE user_id = $1 AND problem_id = ANY($2::uuid[])`

const findBookmarkedSQL = `
SELECT ` + progressColumns + `
FROM user_progress
WHERE user_id = $1 AND is_bookmarked
ORDER BY updated_at DESC`

const countCompletedSQL = `
SELECT count(*) FROM user_progress
WHERE user_id = $1 AND is_completed`

const countCompletedByDifficultySQL = `
SELECT p.difficulty, count(*)
FROM user_progress up
JOIN problems p ON up.problem_id = p.id
WHERE up.user_id = $1 AND up.is_completed
GROUP BY p.difficulty`

const upsertSQL = `
INSERT INTO user_progress (
	id, user_id, problem_id, is_completed, status, completed_at,
	notes, solution_code, time_spent_minutes, attempts, last_attempted_at,
	is_bookmarked, difficulty_rating, created_at, updated_at
)
VALUES (
	$1, $2, $3,
	COALESCE($4, FALSE),
	COALESCE($5, 'not-started'),
	$6,
	$7, $8, $9,
	$10,
	$11,
	COALESCE($12, FALSE),
	$13,
	$14, $14
)
ON CONFLICT (user_id, problem_id) DO UPDATE SET
	is_completed       = COALESCE($4, user_progress.is_completed),
	status             = COALESCE($5, user_progress.status),
	completed_at       = CASE WHEN $15 THEN NULL
	                          ELSE COALESCE($6, user_progress.completed_at) END,
	notes              = COALESCE($7, user_progress.notes),
	solution_code      = COALESCE($8, user_progress.solution_code),
	time_spent_minutes = COALESCE($9, user_progress.time_spent_minutes),
	attempts           = user_progress.attempts + $10,
	last_attempted_at  = $11,
	is_bookmarked      = COALESCE($12, user_progress.is_bookmarked),
	difficulty_rating  = COALESCE($13, user_progress.difficulty_rating),
	updated_at         = $14
RETURNING ` + progressColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Find returns the progress record for a (user, problem) pair.
// Returns domain.ErrNotFound when no record exists yet.
func (r *Repo) Find(ctx context.Context, userID, problemID uuid.UUID) (*domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, findSQL, userID, problemID)
	rec, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "progress", problemID)
	}

	return rec, nil
}

// FindAllForUser returns every progress record of a user, most recently
// updated first. Returns an empty slice (not nil) for users without records.
func (r *Repo) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, findAllForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("find progress for user: %w", err)
	}
	defer rows.Close()

	return collectProgress(rows)
}

// FindByProblemIDs returns the user's progress records restricted to the
// given problem IDs.
func (r *Repo) FindByProblemIDs(ctx context.Context, userID uuid.UUID, problemIDs []uuid.UUID) ([]domain.ProgressRecord, error) {
	if len(problemIDs) == 0 {
		return []domain.ProgressRecord{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, findByProblemIDsSQL, userID, problemIDs)
	if err != nil {
		return nil, fmt.Errorf("find progress by problem ids: %w", err)
	}
	defer rows.Close()

	return collectProgress(rows)
}

// FindBookmarked returns the user's bookmarked progress records.
func (r *Repo) FindBookmarked(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, findBookmarkedSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("find bookmarked progress: %w", err)
	}
	defer rows.Close()

	return collectProgress(rows)
}

// CountCompleted returns the number of completed problems for a user.
func (r *Repo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countCompletedSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count completed: %w", err)
	}

	return count, nil
}

// CountCompletedByDifficulty returns completion counts grouped by problem
// difficulty. Only non-zero groups are returned; the stats service
// pre-initializes the zero buckets.
func (r *Repo) CountCompletedByDifficulty(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countCompletedByDifficultySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("count completed by difficulty: %w", err)
	}
	defer rows.Close()

	counts := []domain.DifficultyCount{}
	for rows.Next() {
		var (
			difficulty string
			count      int
		)
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("scan difficulty count: %w", err)
		}
		counts = append(counts, domain.DifficultyCount{
			Difficulty: domain.Difficulty(difficulty),
			Count:      count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate difficulty counts: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert merges the supplied fields into the (user, problem) record,
// creating it with defaults for unspecified fields when absent. The merge
// is a single atomic statement; per-pair last-write-wins.
func (r *Repo) Upsert(ctx context.Context, userID, problemID uuid.UUID, params domain.ProgressUpsertParams) (*domain.ProgressRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	var status *string
	if params.Status != nil {
		s := string(*params.Status)
		status = &s
	}

	completedAt := params.CompletedAt
	if params.ClearCompletedAt {
		completedAt = nil
	}

	row := querier.QueryRow(ctx, upsertSQL,
		id, userID, problemID,
		params.IsCompleted,
		status,
		completedAt,
		params.Notes,
		params.SolutionCode,
		params.TimeSpentMinutes,
		params.AttemptIncrement,
		params.LastAttemptedAt,
		params.IsBookmarked,
		params.DifficultyRating,
		now,
		params.ClearCompletedAt,
	)
	rec, err := scanProgress(row)
	if err != nil {
		return nil, postgres.MapError(err, "progress", problemID)
	}

	return rec, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (*domain.ProgressRecord, error) {
	var (
		rec    domain.ProgressRecord
		status string
	)
	if err := row.Scan(
		&rec.ID, &rec.UserID, &rec.ProblemID, &rec.IsCompleted, &status, &rec.CompletedAt,
		&rec.Notes, &rec.SolutionCode, &rec.TimeSpentMinutes, &rec.Attempts, &rec.LastAttemptedAt,
		&rec.IsBookmarked, &rec.DifficultyRating, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rec.Status = domain.ProgressStatus(status)
	return &rec, nil
}

func collectProgress(rows pgx.Rows) ([]domain.ProgressRecord, error) {
	records := []domain.ProgressRecord{}
	for rows.Next() {
		rec, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return records, nil
}
