package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a fixed bcrypt hash placeholder.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$notarealhashbutlooksokay1234567890abcdefghijklm",
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedChapter creates an active chapter. Returns a filled domain.Chapter.
func SeedChapter(t *testing.T, pool *pgxpool.Pool, order int) domain.Chapter {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	chapter := domain.Chapter{
		ID:          uuid.New(),
		Name:        "Chapter " + suffix,
		Description: "Chapter description " + suffix,
		Order:       order,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO chapters (id, name, description, icon, sort_order, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		chapter.ID, chapter.Name, chapter.Description, chapter.Icon, chapter.Order, chapter.IsActive, chapter.CreatedAt, chapter.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChapter insert chapter: %v", err)
	}

	return chapter
}

// SeedTopic creates an active topic under the given chapter.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, chapterID uuid.UUID, order int) domain.Topic {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:          uuid.New(),
		ChapterID:   chapterID,
		Name:        "Topic " + suffix,
		Description: "Topic description " + suffix,
		Order:       order,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, chapter_id, name, description, sort_order, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		topic.ID, topic.ChapterID, topic.Name, topic.Description, topic.Order, topic.IsActive, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	return topic
}

// SeedProblem creates an active problem under the given topic.
func SeedProblem(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, difficulty domain.Difficulty, order int) domain.Problem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	problem := domain.Problem{
		ID:          uuid.New(),
		TopicID:     topicID,
		Title:       "Problem " + suffix,
		Description: "Problem description " + suffix,
		Difficulty:  difficulty,
		Tags:        []string{"tag-" + suffix},
		Order:       order,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO problems (id, topic_id, title, description, difficulty,
		                       youtube_link, leetcode_link, codeforces_link, article_link, geeksforgeeks_link, interviewbit_link,
		                       tags, time_complexity, space_complexity, sort_order, is_active, is_premium, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		problem.ID, problem.TopicID, problem.Title, problem.Description, string(problem.Difficulty),
		problem.Links.YouTube, problem.Links.LeetCode, problem.Links.Codeforces, problem.Links.Article, problem.Links.GeeksForGeeks, problem.Links.InterviewBit,
		problem.Tags, problem.TimeComplexity, problem.SpaceComplexity, problem.Order, problem.IsActive, problem.IsPremium, problem.CreatedAt, problem.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProblem insert problem: %v", err)
	}

	return problem
}
