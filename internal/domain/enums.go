package domain

// Difficulty is the fixed difficulty grade of a problem.
// The values are stored and serialized as-is ("Easy", not "EASY"), matching
// the seeded catalog data.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists all difficulty grades in ascending order.
// Stats rollups iterate this to pre-initialize every bucket.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ProgressStatus represents the solve state of a problem for one user.
type ProgressStatus string

const (
	StatusNotStarted          ProgressStatus = "not-started"
	StatusInProgress          ProgressStatus = "in-progress"
	StatusSolvedWithHelp      ProgressStatus = "solved-with-help"
	StatusSolvedIndependently ProgressStatus = "solved-independently"
	StatusNeedsReview         ProgressStatus = "needs-review"
)

func (s ProgressStatus) String() string { return string(s) }

func (s ProgressStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusSolvedWithHelp,
		StatusSolvedIndependently, StatusNeedsReview:
		return true
	}
	return false
}

// IsSolved reports whether the status marks the problem as completed.
// Both solved variants force the completion flag and timestamp.
func (s ProgressStatus) IsSolved() bool {
	return s == StatusSolvedWithHelp || s == StatusSolvedIndependently
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
