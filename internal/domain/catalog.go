package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chapter is the top level of the problem catalog (Arrays, Strings, ...).
// Chapters own topics by reference; inactive chapters are hidden from
// listings but still resolvable by ID for reference validation.
type Chapter struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        *string
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Topic is a sub-category under a chapter. ChapterID must resolve to an
// existing chapter (active or not).
type Topic struct {
	ID          uuid.UUID
	ChapterID   uuid.UUID
	Name        string
	Description string
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProblemLinks holds optional external resources for a problem.
type ProblemLinks struct {
	YouTube       *string
	LeetCode      *string
	Codeforces    *string
	Article       *string
	GeeksForGeeks *string
	InterviewBit  *string
}

// Problem is a single exercise under a topic. TopicID must resolve to an
// existing topic (active or not).
type Problem struct {
	ID              uuid.UUID
	TopicID         uuid.UUID
	Title           string
	Description     string
	Difficulty      Difficulty
	Links           ProblemLinks
	Tags            []string
	TimeComplexity  *string
	SpaceComplexity *string
	Order           int
	IsActive        bool
	IsPremium       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
