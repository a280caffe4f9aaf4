package sheet

import (
	"math"

	"github.com/algotrack/algotrack-backend/internal/domain"
)

// ProblemView pairs a catalog problem with the user's progress on it.
// Problems without a stored record carry the default progress state.
type ProblemView struct {
	Problem  domain.Problem
	Progress domain.ProgressRecord
}

// TopicView is a topic with its problems and completion rollup.
type TopicView struct {
	Topic                domain.Topic
	Problems             []ProblemView
	TotalProblems        int
	CompletedProblems    int
	CompletionPercentage int
}

// ChapterView is a chapter with its topics and completion rollup summed
// over the child topics.
type ChapterView struct {
	Chapter              domain.Chapter
	Topics               []TopicView
	TotalProblems        int
	CompletedProblems    int
	CompletionPercentage int
}

// completionPercent returns round(100*completed/total), 0 when total is 0.
func completionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
