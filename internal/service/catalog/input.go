package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// CreateChapterInput holds the parameters for creating a chapter.
type CreateChapterInput struct {
	Name        string
	Description string
	Icon        *string
	Order       int
}

// Validate checks all fields and collects all errors.
func (i *CreateChapterInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	ChapterID   uuid.UUID
	Name        string
	Description string
	Order       int
}

// Validate checks all fields and collects all errors.
func (i *CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.ChapterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chapter_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateProblemInput holds the parameters for creating a problem.
type CreateProblemInput struct {
	TopicID         uuid.UUID
	Title           string
	Description     string
	Difficulty      domain.Difficulty
	Links           domain.ProblemLinks
	Tags            []string
	TimeComplexity  *string
	SpaceComplexity *string
	Order           int
	IsPremium       bool
}

// Validate checks all fields and collects all errors.
func (i *CreateProblemInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be Easy, Medium, or Hard"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SearchProblemsInput holds the search filter parameters. All supplied
// filters apply together.
type SearchProblemsInput struct {
	Query      *string
	Difficulty *domain.Difficulty
	Tags       []string
}

// Validate checks all fields and collects all errors.
func (i *SearchProblemsInput) Validate() error {
	var errs []domain.FieldError

	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be Easy, Medium, or Hard"})
	}
	if i.Query != nil && len(*i.Query) > 200 {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if len(i.Tags) > 20 {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 20)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
